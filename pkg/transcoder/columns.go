package transcoder

type cellKind int

const (
	textCell cellKind = iota
	numericCell
	activeCell
)

// column maps one target column to its source field.
type column struct {
	name  string
	index int
	kind  cellKind
}

// MinFields is the shortest record that still produces a statement.
const MinFields = 8

// repuestosColumns lists the target columns in statement order. The long
// description is read from a later field than shelf and level but is emitted
// before them to follow the column order of the target table.
var repuestosColumns = []column{
	{name: "cb", index: 0, kind: textCell},
	{name: "ci", index: 1, kind: textCell},
	{name: "producto", index: 2, kind: textCell},
	{name: "tipo", index: 3, kind: textCell},
	{name: "modelo_especificacion", index: 4, kind: textCell},
	{name: "referencia", index: 5, kind: textCell},
	{name: "marca", index: 6, kind: textCell},
	{name: "existencias_iniciales", index: 7, kind: numericCell},
	{name: "stock", index: 10, kind: numericCell},
	{name: "precio", index: 11, kind: numericCell},
	{name: "descripcion_larga", index: 15, kind: textCell},
	{name: "activo", index: -1, kind: activeCell},
	{name: "estante", index: 12, kind: textCell},
	{name: "nivel", index: 13, kind: textCell},
}
