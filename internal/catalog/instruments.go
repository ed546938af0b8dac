package catalog

// AUDIT and DAST-20 were validated together in one study (Pike, 2014) and
// reported as a single entry. Their records share every field that entry
// does not attribute to one test.
const (
	pikeFullName = "AUDIT & DAST-20"
	pikeType     = "Screening (Pike, 2014)"
	pikeTime     = "Brief (2-5 mins)"
	pikeValidity = "Validity: Correlated w/ Legal History & BDI-II (r=.25)."
	pikeVerdict  = "Psychometrically superior to other screens but lacks evidence in street-based HCH outreach."
)

var pikeLimitations = []string{
	"Generalizability: Validated only in male, faith-based rehab settings (Pike, 2014).",
	"Constraint: Validated in a sober/housed cohort during rehab.",
	"Independence: Weak correlation between AUDIT & DAST (r=.19) suggests they measure distinct risks.",
}

// instruments is the comparison table in display order. Screening tools come
// first so the default selection is AUDIT.
var instruments = []Instrument{
	{
		ID:                 "AUDIT",
		Category:           Screening,
		DisplayName:        "AUDIT",
		FullName:           pikeFullName,
		AdministrationType: pikeType,
		TargetSubstance:    "Alcohol",
		AdministrationTime: pikeTime,
		Strengths: []string{
			"Reliability: Excellent internal consistency (α=0.93 for AUDIT).",
			"Performance: Mean score 14.73 for AUDIT (Medium risk).",
			pikeValidity,
		},
		Limitations: pikeLimitations,
		Verdict:     pikeVerdict,
		Tone:        ToneScreening,
	},
	{
		ID:                 "DAST",
		Category:           Screening,
		DisplayName:        "DAST-20",
		FullName:           pikeFullName,
		AdministrationType: pikeType,
		TargetSubstance:    "Polysubstance/Illicit Drugs",
		AdministrationTime: pikeTime,
		Strengths: []string{
			"Reliability: Excellent internal consistency (α=0.86 for DAST).",
			"Performance: Mean score 10.1 for DAST (Substantial risk).",
			pikeValidity,
		},
		Limitations: pikeLimitations,
		Verdict:     pikeVerdict,
		Tone:        ToneScreening,
	},
	{
		ID:                 "ADS",
		Category:           Screening,
		DisplayName:        "ADS",
		FullName:           "Alcohol Dependence Scale",
		AdministrationType: "Screening (Chantarujikapong et al., 1997)",
		TargetSubstance:    "Alcohol Dependence Severity",
		AdministrationTime: "10-15 mins",
		Strengths: []string{
			"Reliability: Excellent internal consistency (α=0.99) in homeless women.",
			"Sensitivity: Exceptional range (0.72–0.96) for identifying AUD.",
			"Specificity: Strong performance (0.70–0.88) with adjusted cutoffs (3-8).",
		},
		Limitations: []string{
			"Population Bias: Primary validation limited to homeless women in St. Louis.",
			"Adjustment: Requires lower cutoffs than general populations to maintain specificity.",
			"Scope: Alcohol-specific; requires supplementation for polysubstance monitoring.",
		},
		Verdict: "Highest sensitivity of the brief tools; best-in-class for alcohol-specific screening in women.",
		Tone:    ToneSpecialized,
	},
	{
		ID:                 "SIP",
		Category:           Assessment,
		DisplayName:        "SIP-2R",
		FullName:           "Short Inventory of Problems",
		AdministrationType: "Assessment (Goldstein et al., 2023)",
		TargetSubstance:    "Alcohol-Related Harm",
		AdministrationTime: "Brief (15 items)",
		Strengths: []string{
			"Reliability: Strong internal consistency (α=0.94) in homeless AUD samples.",
			"Invariance: Partial scalar invariance across races (NAI, Black, White).",
			"Utility: Validated specifically for cross-cultural harm assessment in Seattle.",
		},
		Limitations: []string{
			"Demographics: Validation sample skewed heavily male (80%).",
			"Focus: Measures harms/consequences, not diagnostic criteria or consumption volume.",
			"Context: Best used for harm reduction monitoring rather than initial triage.",
		},
		Verdict: "Gold standard for measuring health and social consequences across diverse racial groups.",
		Tone:    ToneFavorable,
	},
	{
		ID:                 "ASI",
		Category:           Assessment,
		DisplayName:        "ASI",
		FullName:           "Addiction Severity Index",
		AdministrationType: "Assessment (Zanis et al., 1994)",
		TargetSubstance:    "Multidimensional (Alcohol, Drugs, Med, Social)",
		AdministrationTime: "45-60 mins",
		Strengths: []string{
			"Domain Reliability: Medical (α=.93) and Alcohol (α=.87) domains are highly stable.",
			"Performance: 80% sensitivity in detecting drug-positive urine cases via self-report.",
			"Validity: Alcohol CS correlated significantly with ADS (r=.61).",
		},
		Limitations: []string{
			"Unstable Domains: Employment (α=.50) and Family (α=.52) fail psychometric standards.",
			"Burden: 3-day training and long administration is infeasible for HCH workflow (Mäkelä, 2004).",
			"Developer Consensus: McLellan et al. (2004) conceded validity limits in homeless cohorts.",
		},
		Verdict: "Valid for medical/alcohol domains but fails psychometric standards for social/legal domains in PEH.",
		Tone:    ToneCautionary,
	},
	{
		ID:                 "TLFB",
		Category:           Assessment,
		DisplayName:        "TLFB",
		FullName:           "Timeline Followback",
		AdministrationType: "Assessment (Sacks et al., 2003)",
		TargetSubstance:    "Daily Consumption (Alcohol/Drugs)",
		AdministrationTime: "10-30 mins",
		Strengths: []string{
			"Reliability: Good/Excellent ICC (.72–.93) for retrospective recall.",
			"Validation: Strong correlation (r=.68) between self-report and SCRAM monitoring (Rash et al., 2019).",
			"Accuracy: 95-100% detection sensitivity for heavy drinking (>2 drinks).",
		},
		Limitations: []string{
			"Social Risk: High risk of underreporting if punitive sanctions (shelter loss) exist.",
			"Recall Bias: 'Fluidity' of homeless life can impact recall stability (Joyner et al., 1996).",
			"Workflow: Time-intensive calendar method clashes with crisis-driven street medicine.",
		},
		Verdict: "Confirms that self-report is accurate in non-punitive settings; best for outcome monitoring.",
		Tone:    ToneMonitoring,
	},
}
