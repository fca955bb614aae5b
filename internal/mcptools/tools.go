package mcptools

// --- MCP tool input/output types ---
// Every output is a struct so the SDK can publish an object schema for it.

// BinaryInput is the input for the add, subtract, multiply and divide tools.
type BinaryInput struct {
	A float64 `json:"a" jsonschema:"left operand"`
	B float64 `json:"b" jsonschema:"right operand"`
}

// NumberOutput carries a single numeric result.
type NumberOutput struct {
	Result float64 `json:"result"`
}

// CircleAreaInput is the input for the circle_area tool.
type CircleAreaInput struct {
	Radius float64 `json:"radius" jsonschema:"circle radius"`
}

// TextInput is the input for the single-string text tools.
type TextInput struct {
	Text string `json:"text" jsonschema:"input text"`
}

// TextOutput carries a transformed string.
type TextOutput struct {
	Result string `json:"result"`
}

// BoolOutput carries a yes/no answer.
type BoolOutput struct {
	Result bool `json:"result"`
}

// CountOutput carries a count.
type CountOutput struct {
	Count int `json:"count"`
}

// TruncateInput is the input for the truncate tool.
type TruncateInput struct {
	Text      string `json:"text" jsonschema:"input text"`
	MaxLength int    `json:"maxLength" jsonschema:"maximum number of characters kept before the ellipsis"`
}

// FormatDateInput is the input for the format_date tool.
type FormatDateInput struct {
	Date   string `json:"date" jsonschema:"date as YYYY-MM-DD or RFC 3339"`
	Format string `json:"format,omitempty" jsonschema:"one of YYYY-MM-DD, DD/MM/YYYY, MM-DD-YYYY (default YYYY-MM-DD)"`
}

// DaysDifferenceInput is the input for the days_difference tool.
type DaysDifferenceInput struct {
	From string `json:"from" jsonschema:"date as YYYY-MM-DD or RFC 3339"`
	To   string `json:"to" jsonschema:"date as YYYY-MM-DD or RFC 3339"`
}

// DaysOutput carries a whole number of days.
type DaysOutput struct {
	Days int `json:"days"`
}

// LeapYearInput is the input for the is_leap_year tool.
type LeapYearInput struct {
	Year int `json:"year" jsonschema:"Gregorian year"`
}

// GetConfigInput is the (empty) input for the get_config tool.
type GetConfigInput struct{}

// UpdateConfigInput is the input for the update_config tool. Omitted fields
// keep their default value.
type UpdateConfigInput struct {
	AppName *string `json:"appName,omitempty" jsonschema:"application name"`
	Version *string `json:"version,omitempty" jsonschema:"version string"`
	Debug   *bool   `json:"debug,omitempty" jsonschema:"debug flag"`
	APIURL  *string `json:"apiUrl,omitempty" jsonschema:"API base URL"`
	Timeout *int    `json:"timeout,omitempty" jsonschema:"timeout in milliseconds"`
}

// ConfigOutput mirrors config.AppConfig.
type ConfigOutput struct {
	AppName string `json:"appName"`
	Version string `json:"version"`
	Debug   bool   `json:"debug"`
	APIURL  string `json:"apiUrl"`
	Timeout int    `json:"timeout"`
}

// AddUserInput is the input for the add_user tool. When Sample is set, age
// and active flag are randomized and the given values are ignored.
type AddUserInput struct {
	ID       int    `json:"id" jsonschema:"user id"`
	Name     string `json:"name" jsonschema:"display name"`
	Email    string `json:"email" jsonschema:"email address"`
	Age      int    `json:"age,omitempty" jsonschema:"age in years"`
	IsActive bool   `json:"isActive,omitempty" jsonschema:"whether the user is active"`
	Sample   bool   `json:"sample,omitempty" jsonschema:"randomize age and active flag"`
}

// UserOutput describes one user.
type UserOutput struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Age      int    `json:"age"`
	IsActive bool   `json:"isActive"`
}

// UserIDInput is the input for get_user and remove_user.
type UserIDInput struct {
	ID int `json:"id" jsonschema:"user id"`
}

// GetUserOutput is the result of the get_user tool.
type GetUserOutput struct {
	Found bool        `json:"found"`
	User  *UserOutput `json:"user,omitempty"`
}

// ListUsersInput is the (empty) input for list_active_users and count_users.
type ListUsersInput struct{}

// ListUsersOutput is the result of the list_active_users tool.
type ListUsersOutput struct {
	Users []UserOutput `json:"users"`
}

// RemoveUserOutput is the result of the remove_user tool.
type RemoveUserOutput struct {
	Removed bool `json:"removed"`
}
