package mcptools

import (
	"context"
	"fmt"
	"time"

	"github.com/dusk-indust/utilkit/internal/config"
	"github.com/dusk-indust/utilkit/internal/dateutil"
	"github.com/dusk-indust/utilkit/internal/mathutil"
	"github.com/dusk-indust/utilkit/internal/strutil"
	"github.com/dusk-indust/utilkit/internal/users"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// ToolkitService handles MCP tool calls. The helper tools are stateless; the
// user tools share one registry for the lifetime of the service.
type ToolkitService struct {
	users *users.Manager
}

// NewToolkitService creates a ToolkitService backed by mgr.
func NewToolkitService(mgr *users.Manager) *ToolkitService {
	return &ToolkitService{users: mgr}
}

// --- arithmetic ---

// Add returns a + b.
func (s *ToolkitService) Add(_ context.Context, _ *mcp.CallToolRequest, in BinaryInput) (*mcp.CallToolResult, NumberOutput, error) {
	return nil, NumberOutput{Result: mathutil.Add(in.A, in.B)}, nil
}

// Subtract returns a - b.
func (s *ToolkitService) Subtract(_ context.Context, _ *mcp.CallToolRequest, in BinaryInput) (*mcp.CallToolResult, NumberOutput, error) {
	return nil, NumberOutput{Result: mathutil.Subtract(in.A, in.B)}, nil
}

// Multiply returns a * b.
func (s *ToolkitService) Multiply(_ context.Context, _ *mcp.CallToolRequest, in BinaryInput) (*mcp.CallToolResult, NumberOutput, error) {
	return nil, NumberOutput{Result: mathutil.Multiply(in.A, in.B)}, nil
}

// Divide returns a / b. A zero divisor is reported as a tool error.
func (s *ToolkitService) Divide(_ context.Context, _ *mcp.CallToolRequest, in BinaryInput) (*mcp.CallToolResult, NumberOutput, error) {
	q, err := mathutil.Divide(in.A, in.B)
	if err != nil {
		return nil, NumberOutput{}, fmt.Errorf("divide %v by %v: %w", in.A, in.B, err)
	}
	return nil, NumberOutput{Result: q}, nil
}

// CircleArea returns the area of a circle.
func (s *ToolkitService) CircleArea(_ context.Context, _ *mcp.CallToolRequest, in CircleAreaInput) (*mcp.CallToolResult, NumberOutput, error) {
	return nil, NumberOutput{Result: mathutil.CircleArea(in.Radius)}, nil
}

// --- text ---

// Capitalize upper-cases the first character and lower-cases the rest.
func (s *ToolkitService) Capitalize(_ context.Context, _ *mcp.CallToolRequest, in TextInput) (*mcp.CallToolResult, TextOutput, error) {
	return nil, TextOutput{Result: strutil.Capitalize(in.Text)}, nil
}

// Reverse reverses the characters of the text.
func (s *ToolkitService) Reverse(_ context.Context, _ *mcp.CallToolRequest, in TextInput) (*mcp.CallToolResult, TextOutput, error) {
	return nil, TextOutput{Result: strutil.Reverse(in.Text)}, nil
}

// IsPalindrome reports whether the alphanumeric content reads the same both ways.
func (s *ToolkitService) IsPalindrome(_ context.Context, _ *mcp.CallToolRequest, in TextInput) (*mcp.CallToolResult, BoolOutput, error) {
	return nil, BoolOutput{Result: strutil.IsPalindrome(in.Text)}, nil
}

// CountWords counts whitespace-separated words.
func (s *ToolkitService) CountWords(_ context.Context, _ *mcp.CallToolRequest, in TextInput) (*mcp.CallToolResult, CountOutput, error) {
	return nil, CountOutput{Count: strutil.CountWords(in.Text)}, nil
}

// Truncate shortens text to maxLength characters plus an ellipsis.
func (s *ToolkitService) Truncate(_ context.Context, _ *mcp.CallToolRequest, in TruncateInput) (*mcp.CallToolResult, TextOutput, error) {
	return nil, TextOutput{Result: strutil.Truncate(in.Text, in.MaxLength)}, nil
}

// --- dates ---

// FormatDate renders a date in one of the supported layouts.
func (s *ToolkitService) FormatDate(_ context.Context, _ *mcp.CallToolRequest, in FormatDateInput) (*mcp.CallToolResult, TextOutput, error) {
	t, err := parseDate(in.Date)
	if err != nil {
		return nil, TextOutput{}, err
	}
	return nil, TextOutput{Result: dateutil.FormatDate(t, dateutil.Layout(in.Format))}, nil
}

// DaysDifference returns the whole days between two dates, rounded up.
func (s *ToolkitService) DaysDifference(_ context.Context, _ *mcp.CallToolRequest, in DaysDifferenceInput) (*mcp.CallToolResult, DaysOutput, error) {
	from, err := parseDate(in.From)
	if err != nil {
		return nil, DaysOutput{}, err
	}
	to, err := parseDate(in.To)
	if err != nil {
		return nil, DaysOutput{}, err
	}
	return nil, DaysOutput{Days: dateutil.DaysDifference(from, to)}, nil
}

// IsLeapYear reports whether the year is a leap year.
func (s *ToolkitService) IsLeapYear(_ context.Context, _ *mcp.CallToolRequest, in LeapYearInput) (*mcp.CallToolResult, BoolOutput, error) {
	return nil, BoolOutput{Result: dateutil.IsLeapYear(in.Year)}, nil
}

// parseDate accepts YYYY-MM-DD (UTC midnight) or RFC 3339.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: want YYYY-MM-DD or RFC 3339", s)
	}
	return t, nil
}

// --- settings ---

// GetConfig returns the default settings.
func (s *ToolkitService) GetConfig(_ context.Context, _ *mcp.CallToolRequest, _ GetConfigInput) (*mcp.CallToolResult, ConfigOutput, error) {
	return nil, toConfigOutput(config.Get()), nil
}

// UpdateConfig returns the default settings with the given fields replaced.
// The defaults themselves are not changed.
func (s *ToolkitService) UpdateConfig(_ context.Context, _ *mcp.CallToolRequest, in UpdateConfigInput) (*mcp.CallToolResult, ConfigOutput, error) {
	cfg := config.Update(config.Overrides{
		AppName: in.AppName,
		Version: in.Version,
		Debug:   in.Debug,
		APIURL:  in.APIURL,
		Timeout: in.Timeout,
	})
	return nil, toConfigOutput(cfg), nil
}

func toConfigOutput(c config.AppConfig) ConfigOutput {
	return ConfigOutput{
		AppName: c.AppName,
		Version: c.Version,
		Debug:   c.Debug,
		APIURL:  c.APIURL,
		Timeout: c.Timeout,
	}
}

// --- users ---

// AddUser appends a user to the registry.
func (s *ToolkitService) AddUser(_ context.Context, _ *mcp.CallToolRequest, in AddUserInput) (*mcp.CallToolResult, UserOutput, error) {
	var u users.User
	if in.Sample {
		u = users.NewSampleUser(in.ID, in.Name, in.Email)
	} else {
		u = users.User{ID: in.ID, Name: in.Name, Email: in.Email, Age: in.Age, IsActive: in.IsActive}
	}
	s.users.Add(u)
	return nil, toUserOutput(u), nil
}

// GetUser looks a user up by id.
func (s *ToolkitService) GetUser(_ context.Context, _ *mcp.CallToolRequest, in UserIDInput) (*mcp.CallToolResult, GetUserOutput, error) {
	u, ok := s.users.FindByID(in.ID)
	if !ok {
		return nil, GetUserOutput{Found: false}, nil
	}
	out := toUserOutput(u)
	return nil, GetUserOutput{Found: true, User: &out}, nil
}

// ListActiveUsers returns the active users in insertion order.
func (s *ToolkitService) ListActiveUsers(_ context.Context, _ *mcp.CallToolRequest, _ ListUsersInput) (*mcp.CallToolResult, ListUsersOutput, error) {
	active := s.users.ActiveUsers()
	out := ListUsersOutput{Users: make([]UserOutput, 0, len(active))}
	for _, u := range active {
		out.Users = append(out.Users, toUserOutput(u))
	}
	return nil, out, nil
}

// CountUsers returns the number of users held.
func (s *ToolkitService) CountUsers(_ context.Context, _ *mcp.CallToolRequest, _ ListUsersInput) (*mcp.CallToolResult, CountOutput, error) {
	return nil, CountOutput{Count: s.users.Count()}, nil
}

// RemoveUser deletes the first user with the given id.
func (s *ToolkitService) RemoveUser(_ context.Context, _ *mcp.CallToolRequest, in UserIDInput) (*mcp.CallToolResult, RemoveUserOutput, error) {
	return nil, RemoveUserOutput{Removed: s.users.Remove(in.ID)}, nil
}

func toUserOutput(u users.User) UserOutput {
	return UserOutput{
		ID:       u.ID,
		Name:     u.Name,
		Email:    u.Email,
		Age:      u.Age,
		IsActive: u.IsActive,
	}
}
