package rules

// BuildSystem normalizes [build-system].
var BuildSystem = RuleSet{
	Table: "build-system",
	Fields: concat(
		exact(ActRequirement|ActSortRequirement, "requires"),
		exact(ActSortLower, "backend-path"),
	),
	Order: []string{"", "build-backend", "requires", "backend-path"},
}
