package rbac

// Simple default policy. Expand as needed.
var RolePermissions = map[string][]string{
	"candidate": {
		"resume:upload",
		"profile:update",
		"interview:begin",
		"interview:answer",
		"interview:tick",
		"session:view",
		"session:update",
	},
	"interviewer": {
		"session:view",
		"candidate:view-all",
	},
	"admin": {
		"*", // everything
	},
}
