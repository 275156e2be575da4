package theme

// thRegisterBuiltins registers all built-in themes in the registry.
func thRegisterBuiltins() {
	for _, t := range []Theme{
		thDefaultTheme(),
		thGruvboxTheme(),
		thNordTheme(),
		thCatppuccinTheme(),
		thDraculaTheme(),
		thTokyoNightTheme(),
	} {
		thRegister(t)
	}
}

// thDefaultTheme returns the neutral theme with purple headers.
func thDefaultTheme() Theme {
	return Theme{
		Name:      "default",
		Header:    "#7C3AED",
		Value:     "#d4d4d4",
		Title:     "#4ec970",
		Separator: "#6b6b6b",
	}
}

// thGruvboxTheme returns the warm retro Gruvbox theme.
func thGruvboxTheme() Theme {
	return Theme{
		Name:      "gruvbox",
		Header:    "#fe8019",
		Value:     "#ebdbb2",
		Title:     "#b8bb26",
		Separator: "#928374",
	}
}

func thNordTheme() Theme {
	return Theme{
		Name:      "nord",
		Header:    "#88c0d0",
		Value:     "#eceff4",
		Title:     "#a3be8c",
		Separator: "#4c566a",
	}
}

// thCatppuccinTheme returns Catppuccin Mocha.
func thCatppuccinTheme() Theme {
	return Theme{
		Name:      "catppuccin",
		Header:    "#cba6f7",
		Value:     "#cdd6f4",
		Title:     "#a6e3a1",
		Separator: "#6c7086",
	}
}

func thDraculaTheme() Theme {
	return Theme{
		Name:      "dracula",
		Header:    "#bd93f9",
		Value:     "#f8f8f2",
		Title:     "#50fa7b",
		Separator: "#6272a4",
	}
}

func thTokyoNightTheme() Theme {
	return Theme{
		Name:      "tokyo-night",
		Header:    "#7aa2f7",
		Value:     "#c0caf5",
		Title:     "#9ece6a",
		Separator: "#565f89",
	}
}
