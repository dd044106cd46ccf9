package pathways

import "github.com/consultready/consultready/internal/domain"

// Burn mechanism tokens.
const (
	MechanismThermal    = "thermal"
	MechanismScald      = "scald"
	MechanismElectrical = "electrical"
	MechanismChemical   = "chemical"
	MechanismFriction   = "friction"
	MechanismUnknown    = "unknown"
)

// MajorTBSAPercent is the total body surface area at or above which a burn
// is itself a high-risk trigger.
const MajorTBSAPercent = 20

// Burn returns the burn-consult pathway.
func Burn() domain.DomainConfig {
	return domain.DomainConfig{
		Name:      "burn",
		Title:     "Burn Consult Readiness",
		Specialty: "Burn Surgery",
		Fields: []domain.Field{
			boolField("mechanism_documented", "Mechanism of injury documented"),
			boolField("morphology_burn_consistent", "Wound morphology consistent with burn"),
			enumField("mechanism_type", "Mechanism type",
				MechanismThermal, MechanismScald, MechanismElectrical, MechanismChemical, MechanismFriction, MechanismUnknown),
			boolField("tbsa_estimated", "TBSA estimated"),
			numberField("tbsa_pct", "TBSA (%)", 0, 100),
			boolField("depth_assessed", "Burn depth assessed"),
			boolField("location_documented", "Anatomic location documented"),
			boolField("airway_assessed", "Airway / inhalation risk assessed"),
			boolField("vitals_reviewed", "Vitals reviewed / stability assessed"),
			boolField("fluids_addressed", "Fluid resuscitation addressed"),
			boolField("tetanus_addressed", "Tetanus status addressed"),
			boolField("consult_question_defined", "Consult question defined"),
			boolField("electrical_voltage_known_if_electrical", "Voltage / source documented (electrical)"),
			boolField("chemical_agent_known_if_chemical", "Chemical agent identified (chemical)"),
			boolField("inhalation_injury_suspected", "Inhalation injury suspected"),
			boolField("face_involved", "Face involved"),
			boolField("hands_feet_involved", "Hands or feet involved"),
			boolField("genitalia_perineum_involved", "Genitalia or perineum involved"),
			boolField("major_joint_involved", "Major joint involved"),
			boolField("circumferential_burn", "Circumferential burn"),
			boolField("severe_skin_reaction_suspected", "Severe cutaneous reaction suspected (SJS/TEN)"),
		},
		Required: []string{
			"mechanism_documented",
			"morphology_burn_consistent",
			"tbsa_estimated",
			"depth_assessed",
			"location_documented",
			"airway_assessed",
			"vitals_reviewed",
			"fluids_addressed",
			"tetanus_addressed",
			"consult_question_defined",
		},
		Conditional: []domain.ConditionalRequirement{
			{Discriminator: "mechanism_type", Equals: MechanismElectrical, Keys: []string{"electrical_voltage_known_if_electrical"}},
			{Discriminator: "mechanism_type", Equals: MechanismChemical, Keys: []string{"chemical_agent_known_if_chemical"}},
		},
		Derived: domain.Derivations{
			Numbers: []domain.NumberDerivation{
				{Key: "major_tbsa", Source: "tbsa_pct", AtLeast: MajorTBSAPercent},
			},
		},
		HighRiskFlags: []string{
			"electrical_voltage_known_if_electrical",
			"chemical_agent_known_if_chemical",
			"inhalation_injury_suspected",
			"major_tbsa",
		},
		ConsistencyFlags: []string{"mechanism_documented", "morphology_burn_consistent"},
		HighRiskLocationFlags: []string{
			"face_involved",
			"hands_feet_involved",
			"genitalia_perineum_involved",
			"major_joint_involved",
			"circumferential_burn",
		},
		SevereAlternateFlag: "severe_skin_reaction_suspected",
		ReadinessThreshold:  70,
		MissingCap:          5,
		ScopeText: domain.ScopeTexts{
			HighRisk: domain.ScopeText{
				Label:     "WITHIN SCOPE",
				Rationale: "High-risk burn features present (electrical/chemical mechanism, inhalation injury, or major TBSA).",
			},
			Consistent: domain.ScopeText{
				Label:     "WITHIN SCOPE",
				Rationale: "Documented mechanism and wound morphology are consistent with a burn injury.",
			},
			Inconsistent: domain.ScopeText{
				Label:     "OUTSIDE SCOPE",
				Rationale: "Mechanism or wound morphology is not consistent with a burn injury.",
			},
			Insufficient: domain.ScopeText{
				Label:     "UNCERTAIN",
				Rationale: "Insufficient data to determine whether this is a burn injury.",
			},
		},
		TierLabels: domain.TierLabels{
			ConsiderAlternate: "CONSIDER ALTERNATE SERVICE",
			Low:               "LOW RECOMMENDATION (GET KEY INFO FIRST)",
			Strongly:          "STRONGLY RECOMMEND BURN CONSULT",
			ConsultNow:        "CONSULT BURN NOW",
		},
		Message: domain.MessageTemplates{
			Redirect:               "This presentation may be better served by the primary team, wound care, or dermatology.",
			SevereAlternate:        "Features raise concern for a severe cutaneous reaction; escalate to dermatology and critical care urgently.",
			DetailsHeading:         "Key details documented:",
			MissingLead:            "Missing elements:",
			ParallelDetailsHeading: "Key details (documented in parallel):",
			ParallelMissingLead:    "Missing items to make consult higher-yield:",
		},
	}
}

func boolField(key, label string) domain.Field {
	return domain.Field{Key: key, Label: label, Kind: domain.FieldBool}
}

func enumField(key, label string, options ...string) domain.Field {
	return domain.Field{Key: key, Label: label, Kind: domain.FieldEnum, Options: options}
}

func numberField(key, label string, lo, hi float64) domain.Field {
	return domain.Field{Key: key, Label: label, Kind: domain.FieldNumber, Min: &lo, Max: &hi}
}
