package scaffold

import (
	"fmt"

	composetypes "github.com/compose-spec/compose-go/v2/types"
	"gopkg.in/yaml.v3"
)

// composeFile builds docker-compose.yaml for a module. The compose model is
// constructed structurally rather than templated, so the output always
// parses as a valid compose file.
func composeFile(spec *ModuleSpec) ([]byte, error) {
	service := composetypes.ServiceConfig{
		Name:  spec.Name,
		Image: fmt.Sprintf("%s:%s", spec.Name, spec.Version),
		Build: &composetypes.BuildConfig{
			Context: ".",
		},
		Environment: composetypes.NewMappingWithEquals([]string{
			"MODULE_NAME=" + spec.Name,
			"MODULE_DOMAIN=" + spec.Domain,
		}),
	}

	if spec.Options.MCPServer {
		service.Command = composetypes.ShellCommand{"python", "server.py"}
		service.Ports = []composetypes.ServicePortConfig{
			{Target: 8000, Published: "8000", Protocol: "tcp"},
		}
	}

	project := composetypes.Project{
		Name: spec.Name,
		Services: composetypes.Services{
			spec.Name: service,
		},
	}

	data, err := yaml.Marshal(project)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal docker-compose: %w", err)
	}
	return data, nil
}
