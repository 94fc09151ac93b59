// Package schema is the typed in-memory template model and its JSON
// (de)serialisation. The wire format is camelCase; an Element's common
// positioning fields and its type-specific fields are flattened into a
// single JSON object (there is no inner "data" object on the wire).
package schema

// Template is the root of a DeepPrint template document.
type Template struct {
	Meta       Meta              `json:"meta"`
	DataSchema string            `json:"dataSchema"`
	Assets     map[string]string `json:"assets,omitempty"`
	Canvas     Canvas            `json:"canvas"`
}

// Meta carries the template's protocol version and display name.
type Meta struct {
	Version string `json:"version"`
	Name    string `json:"name"`
}

// Orientation values for Canvas.Orientation.
const (
	OrientationPortrait      = 1
	OrientationLandscape     = 2
	OrientationAdaptiveHeight = 3
)

// Canvas describes the printable page and its positioned elements.
type Canvas struct {
	Width       float64       `json:"width"`
	Height      float64       `json:"height"`
	Orientation int           `json:"orientation,omitempty"`
	Styles      *GlobalStyles `json:"styles,omitempty"`
	Elements    []Element     `json:"elements"`
}

// GlobalStyles are canvas-wide defaults an element may override.
type GlobalStyles struct {
	FontFamily string  `json:"fontFamily,omitempty"`
	FontSize   float64 `json:"fontSize,omitempty"`
	FontColor  string  `json:"fontColor,omitempty"`
}

// ElementType discriminates the Element.Data union.
type ElementType string

const (
	ElementText    ElementType = "text"
	ElementTable   ElementType = "table"
	ElementImage   ElementType = "image"
	ElementBarcode ElementType = "barcode"
	ElementQrcode  ElementType = "qrcode"
	ElementLine    ElementType = "line"
	ElementRect    ElementType = "rect"
	ElementEllipse ElementType = "ellipse"
)

// Element is the common positioned-item wrapper. Data holds the
// type-specific payload selected by Type.
type Element struct {
	ID       string
	X, Y     float64
	W, H     float64
	LinkedTo *string
	Type     ElementType
	Data     ElementData
}

// ElementData is implemented by each element variant's props struct.
type ElementData interface {
	elementData()
}

// TextProps is the payload for a "text" element.
type TextProps struct {
	Content         string      `json:"content"`
	FontFamily      string      `json:"fontFamily,omitempty"`
	FontSize        float64     `json:"fontSize,omitempty"`
	FontWeight      *FontWeight `json:"fontWeight,omitempty"`
	FontColor       string      `json:"fontColor,omitempty"`
	LineHeight      float64     `json:"lineHeight,omitempty"`
	TextAlign       string      `json:"textAlign,omitempty"`
	VerticalAlign   string      `json:"verticalAlign,omitempty"`
	TextDecoration  string      `json:"textDecoration,omitempty"`
	AutoShrink      int         `json:"autoShrink,omitempty"`
	LineBreak       *int        `json:"lineBreak,omitempty"`
	AutoHeightField *bool       `json:"autoHeight,omitempty"`
}

func (TextProps) elementData() {}

// AutoHeight returns the effective auto-height flag (default true).
func (t *TextProps) AutoHeight() bool {
	if t.AutoHeightField == nil {
		return true
	}
	return *t.AutoHeightField
}

// LineBreakEnabled returns the effective line-break flag (default 1/true).
func (t *TextProps) LineBreakEnabled() bool {
	if t.LineBreak == nil {
		return true
	}
	return *t.LineBreak != 0
}

// TableProps is the payload for a "table" element.
type TableProps struct {
	Data         string        `json:"data"`
	Columns      []TableColumn `json:"columns"`
	ShowHead     *int          `json:"showHead,omitempty"`
	CellPadding  *float64      `json:"cellPadding,omitempty"`
	BorderWidth  *float64      `json:"borderWidth,omitempty"`
	BorderColor  string        `json:"borderColor,omitempty"`
	AutoHeight   *bool         `json:"autoHeight,omitempty"`
}

func (TableProps) elementData() {}

const (
	defaultCellPadding = 5.0
	defaultBorderWidth = 2.83 // one millimetre in points
)

func (t *TableProps) ShowHeadEnabled() bool {
	if t.ShowHead == nil {
		return true
	}
	return *t.ShowHead != 0
}

func (t *TableProps) CellPaddingOrDefault() float64 {
	if t.CellPadding == nil {
		return defaultCellPadding
	}
	return *t.CellPadding
}

func (t *TableProps) BorderWidthOrDefault() float64 {
	if t.BorderWidth == nil {
		return defaultBorderWidth
	}
	return *t.BorderWidth
}

// TableColumn describes one column of a table element.
type TableColumn struct {
	Title     string            `json:"title"`
	Field     string            `json:"field"`
	Width     *TableColumnWidth `json:"width,omitempty"`
	TextAlign string            `json:"textAlign,omitempty"`
}

// ImageProps is the payload for an "image" element (placeholder only).
type ImageProps struct {
	Src       string `json:"src"`
	ObjectFit string `json:"objectFit,omitempty"`
}

func (ImageProps) elementData() {}

// BarcodeProps is the payload for a "barcode" element (placeholder only).
type BarcodeProps struct {
	Value        string `json:"value"`
	Format       string `json:"format,omitempty"`
	DisplayValue int    `json:"displayValue,omitempty"`
}

func (BarcodeProps) elementData() {}

// QrcodeProps is the payload for a "qrcode" element.
type QrcodeProps struct {
	Value           string  `json:"value"`
	CorrectionLevel string  `json:"correctionLevel,omitempty"`
	Size            float64 `json:"size,omitempty"`
}

func (QrcodeProps) elementData() {}

// LineProps is the payload for a "line" element.
type LineProps struct {
	StrokeWidth *float64  `json:"strokeWidth,omitempty"`
	StrokeColor string    `json:"strokeColor,omitempty"`
	DashArray   []float64 `json:"dashArray,omitempty"`
}

func (LineProps) elementData() {}

func (l *LineProps) StrokeWidthOrDefault() float64 {
	if l.StrokeWidth == nil {
		return defaultBorderWidth
	}
	return *l.StrokeWidth
}

// RectProps is the payload for a "rect" element.
type RectProps struct {
	StrokeWidth  *float64  `json:"strokeWidth,omitempty"`
	StrokeColor  string    `json:"strokeColor,omitempty"`
	FillColor    string    `json:"fillColor,omitempty"`
	BorderRadius float64   `json:"borderRadius,omitempty"`
	DashArray    []float64 `json:"dashArray,omitempty"`
}

func (RectProps) elementData() {}

func (r *RectProps) StrokeWidthOrDefault() float64 {
	if r.StrokeWidth == nil {
		return defaultBorderWidth
	}
	return *r.StrokeWidth
}

// EllipseProps is the payload for an "ellipse" element.
type EllipseProps struct {
	StrokeWidth *float64  `json:"strokeWidth,omitempty"`
	StrokeColor string    `json:"strokeColor,omitempty"`
	DashArray   []float64 `json:"dashArray,omitempty"`
}

func (EllipseProps) elementData() {}

func (e *EllipseProps) StrokeWidthOrDefault() float64 {
	if e.StrokeWidth == nil {
		return defaultBorderWidth
	}
	return *e.StrokeWidth
}
