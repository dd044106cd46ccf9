package pathways

import "github.com/consultready/consultready/internal/domain"

// Clinical suspicion tokens.
const (
	SuspicionHigh      = "High"
	SuspicionModerate  = "Moderate"
	SuspicionLow       = "Low"
	SuspicionUncertain = "Uncertain"
)

// ImpressionConfirmed is the imaging impression that confirms appendicitis.
const ImpressionConfirmed = "Confirmed appendicitis"

// Appendicitis returns the general-surgery appendicitis pathway.
func Appendicitis() domain.DomainConfig {
	return domain.DomainConfig{
		Name:      "appendicitis",
		Title:     "General Surgery - Appendicitis Consult Readiness",
		Specialty: "General Surgery",
		Fields: []domain.Field{
			enumField("clinical_suspicion", "Clinical suspicion for appendicitis",
				SuspicionHigh, SuspicionModerate, SuspicionLow, SuspicionUncertain),
			boolField("vitals_reviewed", "Vitals reviewed / stability assessed"),
			numberField("hr", "HR", 0, 250),
			numberField("sbp", "SBP", 0, 300),
			numberField("dbp", "DBP", 0, 200),
			numberField("temp_c", "Temp (C)", 30, 45),
			numberField("rr", "RR", 0, 80),
			numberField("spo2", "SpO2 (%)", 0, 100),
			numberField("lactate", "Lactate", 0, 30),
			boolField("hemodynamic_instability", "Hemodynamic instability / shock"),
			boolField("sepsis_concern", "Sepsis concern"),
			boolField("pain_location_documented", "Pain location documented (incl. migration)"),
			boolField("pain_duration_documented", "Duration / timeline documented"),
			enumField("duration", "Duration",
				"< 12 hours", "12-24 hours", "24-48 hours", "> 48 hours", "Unknown"),
			boolField("exam_documented", "Focused abdominal exam documented"),
			boolField("peritonitis", "Peritonitis present"),
			boolField("cbc_reviewed", "CBC/WBC addressed"),
			numberField("wbc", "WBC (x10^3/uL)", 0, 60),
			numberField("anc", "ANC", 0, 60),
			numberField("crp", "CRP", 0, 500),
			boolField("pregnancy_addressed", "Pregnancy status addressed (if applicable)"),
			enumField("pregnancy_status", "Pregnancy status", "Not applicable", "Negative", "Positive", "Unknown"),
			boolField("gyn_emergency_suspected", "Gynecologic emergency suspected (torsion/ectopic)"),
			boolField("imaging_addressed", "Imaging plan/result addressed"),
			enumField("imaging_status", "Imaging status", "Not done", "Ordered/pending", "Completed"),
			enumField("imaging_impression", "Imaging impression",
				"Not available", "Negative", "Equivocal", ImpressionConfirmed),
			boolField("complicated_features", "Complicated features (abscess/perforation/phlegmon)"),
			boolField("consult_question_defined", "Consult question defined"),
		},
		Required: []string{
			"vitals_reviewed",
			"pain_location_documented",
			"pain_duration_documented",
			"exam_documented",
			"cbc_reviewed",
			"pregnancy_addressed",
			"imaging_addressed",
			"consult_question_defined",
		},
		Derived: domain.Derivations{
			Enums: []domain.EnumDerivation{
				{Key: "imaging_confirmed", Source: "imaging_impression", TrueWhen: []string{ImpressionConfirmed}},
				{
					Key:       "suspicion_consistent",
					Source:    "clinical_suspicion",
					TrueWhen:  []string{SuspicionHigh, SuspicionModerate},
					FalseWhen: []string{SuspicionLow},
				},
			},
		},
		HighRiskFlags: []string{
			"hemodynamic_instability",
			"peritonitis",
			"sepsis_concern",
			"imaging_confirmed",
			"complicated_features",
		},
		ConsistencyFlags:    []string{"suspicion_consistent"},
		SevereAlternateFlag: "gyn_emergency_suspected",
		ReadinessThreshold:  60,
		MissingCap:          6,
		ScopeText: domain.ScopeTexts{
			HighRisk: domain.ScopeText{
				Label:     "HIGH RISK",
				Rationale: "Red flags present (instability/peritonitis/sepsis/confirmed or complicated appendicitis).",
			},
			Consistent: domain.ScopeText{
				Label:     "LIKELY",
				Rationale: "Clinical picture reasonably consistent with appendicitis.",
			},
			Inconsistent: domain.ScopeText{
				Label:     "UNLIKELY",
				Rationale: "Clinical picture less consistent with appendicitis.",
			},
			Insufficient: domain.ScopeText{
				Label:     "UNCERTAIN",
				Rationale: "Insufficient data to estimate likelihood.",
			},
		},
		TierLabels: domain.TierLabels{
			ConsiderAlternate: "CONSIDER ALTERNATE SERVICE / OBSERVE",
			Low:               "LOW RECOMMENDATION (GET KEY INFO FIRST)",
			Strongly:          "STRONGLY RECOMMEND GEN SURG CONSULT",
			ConsultNow:        "CONSULT NOW",
		},
		Message: domain.MessageTemplates{
			Redirect:               "Consider medicine or observation with serial exams; re-consult if the picture evolves.",
			SevereAlternate:        "Features raise concern for a gynecologic emergency; involve OB/GYN urgently.",
			DetailsHeading:         "Key details documented:",
			MissingLead:            "Missing elements:",
			ParallelDetailsHeading: "Key details (documented in parallel):",
			ParallelMissingLead:    "Missing items to make consult higher-yield:",
		},
	}
}

// All returns every built-in pathway in display order.
func All() []domain.DomainConfig {
	return []domain.DomainConfig{Burn(), Appendicitis()}
}
