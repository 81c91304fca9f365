package auth

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Permissions maps role -> []permission
type Permissions map[string][]string

type permissionsFile struct {
	Roles map[string][]string `yaml:"roles"`
}

// LoadPermissions loads a permissions.yml file and returns a role->permissions map.
func LoadPermissions(path string) (Permissions, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var pf permissionsFile
	if err := yaml.Unmarshal(b, &pf); err != nil {
		return nil, err
	}
	return Permissions(pf.Roles), nil
}

// DefaultPermissions is the built-in role map used when no permissions.yml
// is present. Both front-desk roles hold the full permission set; the
// role->permission indirection is what deployments override per site.
func DefaultPermissions() Permissions {
	all := []string{
		"patient:create", "patient:view", "patient:discharge",
		"bed:create", "bed:view", "bed:update",
		"visit:create", "visit:view", "visit:update", "visit:delete",
		"test:create", "test:view", "test:update", "test:delete",
		"inventory:create", "inventory:view", "inventory:update", "inventory:delete",
		"dashboard:view",
		"assistant:use",
	}
	return Permissions{
		"admin": all,
		"staff": all,
	}
}
