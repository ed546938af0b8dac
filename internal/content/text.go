package content

var hero = Hero{
	Badge:    "Systematic Review",
	Title:    "Validated Instruments for Substance Use Disorders in",
	Emphasis: "Homeless Healthcare",
	Subtitle: "A comparative review identifying appropriate screening and assessment tools for " +
		"outreach-based settings to facilitate rapid linkage to treatment.",
}

var footer = Footer{
	Title:      "Comparative Review",
	Subtitle:   "Substance Use Disorders in Homeless Healthcare Settings",
	Date:       "Presentation Date: April 25-26, 2025",
	Disclosure: "No Financial Relationships to Disclose",
}

var sections = []Section{
	{
		ID:     "background",
		Number: 1,
		Label:  "Background",
		Sub:    "Introduction & Context",
		Kicker: "01 Introduction",
		Title:  "The Implementation Gap",
		Body: `> "Mobile clinics, shelters, and other nontraditional care environments serve as critical first points of contact."

People experiencing homelessness (PEH) are disproportionately affected by substance use disorders (SUD), yet the widespread screening, diagnosis, and linkage to treatment for these conditions remain problematic.

The USPSTF, SAMHSA, and NHCHC have recommended implementing screeners for SUD in homeless populations; however, few existing SUD-related instruments are validated within diverse homeless populations and healthcare for the homeless (HCH) service settings.

HCH programs often face obstacles implementing standardized screening, brief intervention, and referral to treatment (SBIRT) protocols due to uncertainty about each instrument's **feasibility, validation, staff training**, and the interruption of service provision.
`,
	},
	{
		ID:     "methods",
		Number: 2,
		Label:  "Methods",
		Sub:    "Literature Search",
		Kicker: "02 Methodology",
		Title:  "Systematic Literature Search",
		Body: `We conducted a systematic search in PubMed and related databases, supplemented by gray literature. Inclusion criteria focused on studies validating standardized SUD tools in adults in HCH settings with presenting performance data.

- Extracted data on psychometric properties (sensitivity, specificity).
- Analyzed feasibility and implementation challenges in outreach settings.
- Narrative synthesis of barriers and facilitators.
`,
		Embed: EmbedFunnel,
	},
	{
		ID:     "results",
		Number: 3,
		Label:  "Results",
		Sub:    "Tool Analysis",
		Kicker: "03 Findings",
		Title:  "Evidence Synthesis",
		Body: `Our review identified 12 key entries including primary psychometric validation studies, reviews, and commentaries. While several tools show high reliability, the feasibility of implementation in rapid-triage HCH settings remains a critical barrier.
`,
		Embed: EmbedComparison,
	},
	{
		ID:     "equity",
		Number: 4,
		Label:  "Discussion",
		Sub:    "Conclusions & Future",
		Kicker: "04 Discussion & Conclusions",
		Title:  "Prevalence vs. Stigma",
		Body: `Substance use disorder is a leading cause of death for our patients, often manifesting from a lifetime of poverty, exclusion, and trauma. However, **homelessness is a problem of affordable housing and is not synonymous with addiction.** Approximately 60% of people experiencing homelessness do not meet criteria for AUD, yet prevalence remains far above that of housed populations.

> **The Validation Gap.** While USPSTF and SAMHSA recommend screening, widespread tools (ASI, AUDIT) lack robust validation in HCH settings. Questions regarding hygiene, food storage, or sleep quality often fail to account for the reality of homelessness, skewing validity (Gordon et al.).

### The "Street Reality"

Reality confronts us with a difficult trade-off in street outreach: **Rapport vs. Paperwork**. Formal screening can interrupt the delicate trust-building process.

While expert clinicians can diagnose via unstructured interview, volunteer or student-run teams benefit from protocolized approaches. However, self-reporting is often under-reported due to fear of losing services or shelter access.

### Practical Strategies

**Single-Item Screeners.** The USPSTF recommends single-question screens for alcohol/drugs. They offer a fair trade-off between ease of use and accuracy (Sensitivity 82-87%), making them potentially suitable for high-turnover street clinics despite the lack of specific HCH validation.

**Adapting SBIRT.** SBIRT is cost-effective but relies on stable settings. For street medicine, it must be adapted to include immediate physician assessment for on-site treatment initiation and low-barrier harm reduction distribution.

### Future Directions

We need instruments that are respectful, brief, and accessible to those with neurocognitive impairments.

> *"Employing a community-engaged research approach to involve patients in the selection and adaptation of screening tools can ensure that the instruments are acceptable to those they are intended to serve."*
`,
	},
}

var references = []string{
	"Zanis, D. A., McLellan, A. T., Cnaan, R. A., & Randall, M. (1994). Reliability and validity of the Addiction Severity Index with a homeless sample. Journal of Substance Abuse Treatment, 11(6), 541-548.",
	"Argeriou, M., McCarty, D., Mulvey, K., & Daley, M. (1994). Use of the addiction severity index with homeless substance abusers. Journal of Substance Abuse Treatment, 11(4), 359–365.",
	"Drake, R. E., McHugo, G. J., & Biesanz, J. C. (1995). The test-retest reliability of standardized instruments among homeless persons with substance use disorders. Journal of Studies on Alcohol, 56(2), 161–167.",
	"Goldfinger, S. M., Schutt, R. K., Tolomiczenko, G. S., Seidman, L., Penk, W. E., Turner, W. M., & Caplan, B. (1996). Housing placement and subsequent days homeless among formerly homeless adults with mental illness. Psychiatric Services, 50(5), 674–679.",
	"Joyner, L. M., Wright, J. D., & Devine, J. A. (1996). Reliability and validity of the Addiction Severity Index among homeless substance misusers. Substance Use & Misuse, 31(6), 729–751.",
	"Chantarujikapong, S. I., Smith, E. M., & Fox, L. W. (1997). Comparison of the Alcohol Dependence Scale and Diagnostic Interview Schedule in homeless women. Alcoholism: Clinical and Experimental Research, 21(4), 586-595.",
	"Sacks, J. A., Drake, R. E., Williams, V. F., Banks, S. M., & Herrell, J. M. (2003). Utility of the Time-Line Follow-Back to assess substance use among homeless adults. Journal of Nervous and Mental Disease, 191(3), 145-153.",
	"Pike, S. L. (2014). The assessment of alcohol use disorders among homeless men in residential treatment [Unpublished clinical doctoral dissertation]. Pepperdine University.",
	"Goldstein, S. C., Spillane, N. S., Tate, M., Nelson, L., & Collins, S. E. (2023). Measurement Invariance and Other Psychometric Properties of the Short Inventory of Problems (SIP-2R) Across Racial Groups in Adults Experiencing Homelessness and Alcohol Use Disorder. Psychology of Addictive Behaviors, 37(2), 199–208.",
	"Rash, C. J., Petry, N. M., Alessi, S. M., & Barnett, N. P. (2019). Monitoring alcohol use in heavy drinking soup kitchen attendees. Alcohol, 81, 139-147.",
}
