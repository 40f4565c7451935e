package page

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	svgPolicyOnce sync.Once
	svgPolicy     *bluemonday.Policy

	textPolicy = bluemonday.StrictPolicy()
)

func sanitizeText(raw string) string {
	return strings.TrimSpace(textPolicy.Sanitize(raw))
}

func sanitizeSVG(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	return strings.TrimSpace(svgSanitizer().Sanitize(trimmed))
}

func svgSanitizer() *bluemonday.Policy {
	svgPolicyOnce.Do(func() {
		policy := bluemonday.StrictPolicy()
		policy.AllowElements("svg", "g", "path", "circle", "rect", "line", "polyline", "text", "title", "desc")

		policy.AllowAttrs(
			"xmlns", "viewBox", "width", "height", "style", "class", "role", "aria-label",
		).OnElements("svg")

		for _, el := range []string{"g", "path", "circle", "rect", "line", "polyline"} {
			policy.AllowAttrs(
				"d", "cx", "cy", "r", "x", "y", "x1", "y1", "x2", "y2", "width", "height",
				"points", "fill", "stroke", "stroke-width", "style", "class", "transform",
			).OnElements(el)
		}
		policy.AllowAttrs("x", "y", "dx", "dy", "style", "class", "transform", "text-anchor").OnElements("text")

		svgPolicy = policy
	})
	return svgPolicy
}
