package toolkit

// ModuleInfo names a module and the symbols it exports.
type ModuleInfo struct {
	Name    string   `json:"name"`
	Package string   `json:"package"`
	Symbols []string `json:"symbols"`
}

// Manifest lists every module reachable through Utils, in a fixed order.
func Manifest() []ModuleInfo {
	return []ModuleInfo{
		{
			Name:    ModuleMath,
			Package: "internal/mathutil",
			Symbols: []string{"Add", "Subtract", "Multiply", "Divide", "CircleArea", "PI", "E"},
		},
		{
			Name:    ModuleString,
			Package: "internal/strutil",
			Symbols: []string{"Capitalize", "Reverse", "IsPalindrome", "CountWords", "Truncate"},
		},
		{
			Name:    ModuleDate,
			Package: "internal/dateutil",
			Symbols: []string{
				"FormatDate", "DaysDifference", "IsLeapYear", "Now", "AddDays",
				"FirstDayOfMonth", "LastDayOfMonth", "DaysInWeek", "MonthsInYear",
			},
		},
		{
			Name:    ModuleUsers,
			Package: "internal/users",
			Symbols: []string{"User", "Role", "Manager", "NewManager", "NewSampleUser"},
		},
		{
			Name:    ModuleConfig,
			Package: "internal/config",
			Symbols: []string{"AppConfig", "Default", "Get", "Update", "Load"},
		},
	}
}
