package domain

type Credentials struct {
	AccessToken  string `json:"access_token"`
	ClientSecret string `json:"client_secret"`
	BaseURL      string `json:"base_url,omitempty"`
}

func (c Credentials) IsComplete() bool {
	return c.AccessToken != "" && c.ClientSecret != ""
}
