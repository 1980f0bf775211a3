package format

// basePalette é a paleta fixa usada pelos gráficos de barras e de distribuição
var basePalette = []string{
	"#3f51b5",
	"#20c997",
	"#9e9e9e",
	"#43a047",
	"#e53935",
	"#fdd835",
	"#fb8c00",
	"#8e24aa",
}

// Palette retorna n cores da paleta base, repetindo ciclicamente quando n excede o tamanho dela
func Palette(n int) []string {
	if n <= 0 {
		return []string{}
	}

	colors := make([]string, n)
	for i := 0; i < n; i++ {
		colors[i] = basePalette[i%len(basePalette)]
	}

	return colors
}

// PaletteColor retorna a cor da posição i
func PaletteColor(i int) string {
	if i < 0 {
		i = -i
	}
	return basePalette[i%len(basePalette)]
}

// PaletteSize retorna a quantidade de cores da paleta base
func PaletteSize() int {
	return len(basePalette)
}
