package reporting

import (
	"math"

	"github.com/vfg2006/consultant-dashboard-api/internal/config"
	"github.com/vfg2006/consultant-dashboard-api/internal/domain"
)

// HealthPolicy define os limites de recência e os pesos do score de saúde dos clientes
type HealthPolicy struct {
	ActiveDays       int
	AtRiskDays       int
	ActiveBase       float64
	ActiveDecay      float64
	ActiveMaxPenalty float64
	AtRiskBase       float64
	AtRiskDecay      float64
	AtRiskMaxPenalty float64
	InactiveBase     float64
	InactiveDecay    float64
	MaxRows          int
}

func DefaultHealthPolicy() HealthPolicy {
	return HealthPolicy{
		ActiveDays:       30,
		AtRiskDays:       90,
		ActiveBase:       90,
		ActiveDecay:      2,
		ActiveMaxPenalty: 40,
		AtRiskBase:       50,
		AtRiskDecay:      0.5,
		AtRiskMaxPenalty: 25,
		InactiveBase:     25,
		InactiveDecay:    0.1,
		MaxRows:          15,
	}
}

// HealthPolicyFromConfig usa os valores padrão para limites não configurados
func HealthPolicyFromConfig(cfg config.Health) HealthPolicy {
	p := DefaultHealthPolicy()

	if cfg.ActiveDays > 0 {
		p.ActiveDays = cfg.ActiveDays
	}
	if cfg.AtRiskDays > p.ActiveDays {
		p.AtRiskDays = cfg.AtRiskDays
	}
	if cfg.ActiveBase > 0 {
		p.ActiveBase = cfg.ActiveBase
	}
	if cfg.ActiveDecay > 0 {
		p.ActiveDecay = cfg.ActiveDecay
	}
	if cfg.ActiveMaxPenalty > 0 {
		p.ActiveMaxPenalty = cfg.ActiveMaxPenalty
	}
	if cfg.AtRiskBase > 0 {
		p.AtRiskBase = cfg.AtRiskBase
	}
	if cfg.AtRiskDecay > 0 {
		p.AtRiskDecay = cfg.AtRiskDecay
	}
	if cfg.AtRiskMaxPenalty > 0 {
		p.AtRiskMaxPenalty = cfg.AtRiskMaxPenalty
	}
	if cfg.InactiveBase > 0 {
		p.InactiveBase = cfg.InactiveBase
	}
	if cfg.InactiveDecay > 0 {
		p.InactiveDecay = cfg.InactiveDecay
	}
	if cfg.MaxRows > 0 {
		p.MaxRows = cfg.MaxRows
	}

	return p
}

// Classify converte os dias desde a última atividade em status e score (0-100)
func (p HealthPolicy) Classify(days int) (domain.ClientStatus, int) {
	d := float64(days)

	switch {
	case days <= p.ActiveDays:
		return domain.ClientStatusActive, roundScore(p.ActiveBase - math.Min(d*p.ActiveDecay, p.ActiveMaxPenalty))
	case days <= p.AtRiskDays:
		over := d - float64(p.ActiveDays)
		return domain.ClientStatusAtRisk, roundScore(p.AtRiskBase - math.Min(over*p.AtRiskDecay, p.AtRiskMaxPenalty))
	default:
		over := d - float64(p.AtRiskDays)
		return domain.ClientStatusInactive, roundScore(math.Max(p.InactiveBase-over*p.InactiveDecay, 0))
	}
}

func roundScore(v float64) int {
	return int(math.Round(v))
}
