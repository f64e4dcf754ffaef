package utils

import jsoniter "github.com/json-iterator/go"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// PrettyJSON serializa qualquer valor indentado, usado na saída da CLI
func PrettyJSON(in any) string {
	buffer, err := json.MarshalIndent(in, "", "  ")
	if err != nil {
		return err.Error()
	}

	return string(buffer)
}
