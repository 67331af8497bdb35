package catalog

var defaultSections = []Section{
	{
		Title: "Paid Search Experience",
		Questions: []string{
			"Describe your experience with Google Ads. What campaign types have you managed?",
			"What automated bidding strategies have you implemented and what were the results?",
			"How do you approach keyword research and account structure?",
			"What is your experience with shopping campaigns and feed optimization?",
			"Describe your experience with Microsoft Advertising (Bing Ads)",
		},
	},
	{
		Title: "Paid Social Experience",
		Questions: []string{
			"What social platforms have you run campaigns on?",
			"Describe your experience with Facebook Business Manager and ad formats",
			"How do you approach audience targeting and lookalike audiences?",
			"What is your experience with LinkedIn Advertising?",
			"How do you measure and optimize social campaign performance?",
		},
	},
	{
		Title: "Display & Programmatic",
		Questions: []string{
			"What DSPs have you worked with?",
			"Describe your experience with Google Display Network",
			"How do you approach audience segmentation in programmatic campaigns?",
			"What is your experience with dynamic creative optimization?",
			"How do you manage brand safety and fraud prevention?",
		},
	},
	{
		Title: "Analytics & Reporting",
		Questions: []string{
			"What analytics platforms are you proficient in?",
			"How do you approach attribution modeling?",
			"Describe your experience with tag management systems",
			"How do you measure ROAS across different channels?",
			"What custom reports have you built for stakeholders?",
		},
	},
	{
		Title: "Client Experience",
		Questions: []string{
			"What industries have you worked in?",
			"What was your largest client budget managed?",
			"How many clients do you manage simultaneously?",
			"Which geographic markets have you managed campaigns in?",
			"Describe your most successful campaign and its results",
		},
	},
}

// Default - встроенный каталог "Digital Marketing Interview Assessment"
func Default() *Catalog {
	cat, err := New(defaultSections)
	if err != nil {
		panic(err)
	}
	return cat
}
