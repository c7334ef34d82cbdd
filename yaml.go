package headwall

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// OptionsFromYAML parses a partial override document. Omitted keys stay nil
// and fall back to defaults at resolve time, so an empty document is a valid
// no-op override.
func OptionsFromYAML(data []byte) (Options, error) {
	var opts Options
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return Options{}, fmt.Errorf("parse header policy options: %w", err)
	}
	return opts, nil
}

// UnmarshalYAML accepts the Permissions-Policy in either shape:
//
//	permissionsPolicy:
//	  camera: []
//	  geolocation: ["'self'"]
//
// or the explicit list form with feature/allowedOrigins keys. The mapping form
// is decoded node-by-node so the document's key order survives into the
// emitted header.
func (p *PermissionsPolicy) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.MappingNode:
		out := make(PermissionsPolicy, 0, len(node.Content)/2)
		for i := 0; i+1 < len(node.Content); i += 2 {
			keyNode := node.Content[i]
			valNode := node.Content[i+1]

			var origins []string
			if err := valNode.Decode(&origins); err != nil {
				return fmt.Errorf("permissions policy feature %q: %w", keyNode.Value, err)
			}
			out = append(out, PermissionsDirective{
				Feature:        keyNode.Value,
				AllowedOrigins: origins,
			})
		}
		*p = out
		return nil
	case yaml.SequenceNode:
		var out []PermissionsDirective
		if err := node.Decode(&out); err != nil {
			return err
		}
		*p = out
		return nil
	default:
		return fmt.Errorf("permissions policy must be a mapping or a sequence, got %v", node.Kind)
	}
}
