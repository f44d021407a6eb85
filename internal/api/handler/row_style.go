package handler

import (
	"strings"

	"github.com/commutersec/admin-dashboard/internal/core/domain"
	"github.com/commutersec/admin-dashboard/pkg/format"
)

// RowStyle is the badge a table row shows and its colour class.
type RowStyle struct {
	Badge string `json:"badge"`
	Class string `json:"class"`
}

// RowStyler derives the RowStyle of one record.
type RowStyler[T any] func(T) RowStyle

// AdminRowStyle badges admins by role, e.g. "Super Admin".
func AdminRowStyle(a domain.Admin) RowStyle {
	return badge(string(a.Role), format.RoleColors)
}

// DriverRowStyle badges drivers by license status.
func DriverRowStyle(d domain.Driver) RowStyle {
	return badge(string(d.LicenseStatus), format.LicenseStatusColors)
}

func badge(value string, colors map[string]string) RowStyle {
	return RowStyle{
		Badge: format.CapitalizeWords(strings.ReplaceAll(value, "_", " ")),
		Class: format.StatusColor(value, colors, ""),
	}
}
