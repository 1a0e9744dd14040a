package constants

// SVG sources for the widget's icons. They are rasterized at the size and
// color the theme asks for, so only their shape matters.
const (
	ChevronDownSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24">` +
		`<path d="M4 8 L6 6 L12 12 L18 6 L20 8 L12 16 Z" fill="#000"/></svg>`

	SearchSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24">` +
		`<circle cx="10" cy="10" r="6" fill="none" stroke="#000" stroke-width="2"/>` +
		`<path d="M14.5 14.5 L20 20" fill="none" stroke="#000" stroke-width="2.5"/></svg>`

	BackspaceSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24">` +
		`<path d="M8 5 H21 V19 H8 L2 12 Z" fill="none" stroke="#000" stroke-width="2"/>` +
		`<path d="M11 9 L17 15 M17 9 L11 15" fill="none" stroke="#000" stroke-width="2"/></svg>`

	GlobeSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24">` +
		`<circle cx="12" cy="12" r="9" fill="none" stroke="#000" stroke-width="2"/>` +
		`<ellipse cx="12" cy="12" rx="4" ry="9" fill="none" stroke="#000" stroke-width="1.5"/>` +
		`<path d="M3 12 H21" fill="none" stroke="#000" stroke-width="1.5"/></svg>`
)
