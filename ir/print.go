package ir

import "strings"

// Render returns the full textual representation of the category:
// one line per object followed by one line per morphism, in creation order.
// The rendering is deterministic: compiling the same source twice produces
// byte-identical output.
func Render(cat *Category) string {
	sb := strings.Builder{}

	for _, obj := range cat.Objects {
		sb.WriteString("object ")
		sb.WriteString(obj.Name)
		sb.WriteString(" : ")
		sb.WriteString(obj.Dim.Repr())
		sb.WriteRune('\n')
	}

	for _, m := range cat.Morphisms {
		sb.WriteString("morphism ")

		for i, obj := range m.Domain {
			if i > 0 {
				sb.WriteString(", ")
			}

			sb.WriteString(obj.Name)
		}

		sb.WriteString(" -> ")
		sb.WriteString(m.Codomain.Name)
		sb.WriteString(" : ")
		sb.WriteString(m.Descriptor)
		sb.WriteRune('\n')
	}

	return sb.String()
}
