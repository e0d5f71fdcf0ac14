package rules

// Project normalizes [project] (PEP 621 metadata). Sub tables such as
// [project.urls] are folded into dotted keys first.
var Project = RuleSet{
	Table:    "project",
	Collapse: true,
	Fields: concat(
		exact(ActCanonicalName, "name"),
		exact(ActQuote, "version", "readme", "license", "requires-python"),
		exact(ActCollapseSpaces, "description"),
		exact(ActQuoteItems|ActSortLower, "keywords", "dynamic", "classifiers"),
		exact(ActRequirement|ActSortRequirement, "dependencies"),
		prefix(ActRequirement|ActSortRequirement, "optional-dependencies."),
		prefix(ActQuote, "urls.", "scripts.", "gui-scripts.", "entry-points."),
	),
	Order: []string{
		"",
		"name",
		"version",
		"description",
		"readme",
		"keywords",
		"license",
		"license-files",
		"maintainers",
		"authors",
		"requires-python",
		"classifiers",
		"dynamic",
		"dependencies",
		"optional-dependencies",
		"urls",
		"scripts",
		"gui-scripts",
		"entry-points",
	},
	Synthesize: synthesizeClassifiers,
}
