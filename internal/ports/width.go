package ports

const DefaultDisplayWidth = 80

type WidthProvider interface {
	Width() (int, error)
}

type FixedWidth int

func (w FixedWidth) Width() (int, error) {
	return int(w), nil
}

// ResolveWidth falls back to DefaultDisplayWidth when the provider is missing, fails, or reports
// a non-positive width.
func ResolveWidth(provider WidthProvider) int {
	if provider == nil {
		return DefaultDisplayWidth
	}

	width, err := provider.Width()
	if err != nil || width <= 0 {
		return DefaultDisplayWidth
	}

	return width
}
