package firestore

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	defdom "texia/internal/domain/defect"
	lotdom "texia/internal/domain/lot"
	taskdom "texia/internal/domain/task"
)

func TestFabricFromDocDefaults(t *testing.T) {
	f := fabricFromDoc("t1", nil)

	assert.Equal(t, "t1", f.ID)
	assert.Equal(t, "", f.Name)
	assert.Equal(t, 0.0, f.Price)
	assert.Equal(t, 0, f.Stock)
	assert.Equal(t, "metros", f.Unit)
	assert.Equal(t, 0, f.OrderCount)
}

func TestFabricFromDocTypeMismatch(t *testing.T) {
	// Wrong-typed values behave exactly like absent ones.
	f := fabricFromDoc("t2", map[string]any{
		"nombre":          int64(7),
		"precio":          "no es número",
		"stockDisponible": int64(250),
		"unidad":          "",
	})

	assert.Equal(t, "", f.Name)
	assert.Equal(t, 0.0, f.Price)
	assert.Equal(t, 250, f.Stock)
	assert.Equal(t, "metros", f.Unit)
}

func TestFabricFromDocFull(t *testing.T) {
	f := fabricFromDoc("t3", map[string]any{
		"nombre":            "Algodón Pima",
		"tipo":              "Algodón",
		"color":             "Blanco",
		"precio":            18.5,
		"stockDisponible":   int64(320),
		"unidad":            "metros",
		"proveedor":         "Textiles del Sur",
		"ubicacion":         "Almacén A-3",
		"imagen":            "telas/pima.jpg",
		"descripcion":       "algodón peruano de fibra larga",
		"ordenesNacionales": int64(42),
	})

	assert.Equal(t, "Algodón Pima", f.Name)
	assert.Equal(t, 18.5, f.Price)
	assert.Equal(t, 320, f.Stock)
	assert.Equal(t, 42, f.OrderCount)
	assert.Equal(t, "telas/pima.jpg", f.ImagePath)
}

func TestLotFromDocDerivesStatus(t *testing.T) {
	bought := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	l := lotFromDoc("l1", map[string]any{
		"userId":               "u1",
		"nombre":               "Pima azul",
		"cantidadComprada":     100.0,
		"cantidadUsada":        90.0,
		"cantidadEnProduccion": 0.0,
		"precioCompra":         12.0,
		"fechaCompra":          bought,
		"lote":                 "L-2024-07",
	})

	assert.Equal(t, lotdom.StatusLowStock, l.Status)
	assert.Equal(t, 10.0, l.Available())
	assert.Equal(t, "L-2024-07", l.LotCode)
	if assert.NotNil(t, l.PurchasedAt) {
		assert.Equal(t, bought, *l.PurchasedAt)
	}
}

func TestLotFromDocDefaults(t *testing.T) {
	l := lotFromDoc("l2", map[string]any{})

	assert.Equal(t, lotdom.StatusExhausted, l.Status, "all-zero quantities classify as AGOTADO")
	assert.Equal(t, "metros", l.Unit)
	assert.Nil(t, l.PurchasedAt)
}

// Firestore returns int64 for integer-written numbers; the quantity
// readers must accept both shapes.
func TestLotFromDocIntegerQuantities(t *testing.T) {
	l := lotFromDoc("l3", map[string]any{
		"cantidadComprada":     int64(50),
		"cantidadUsada":        int64(10),
		"cantidadEnProduccion": int64(5),
	})

	assert.Equal(t, lotdom.StatusInProduction, l.Status)
	assert.Equal(t, 35.0, l.Available())
}

func TestTaskFromDocDefaults(t *testing.T) {
	tk := taskFromDoc("o1", map[string]any{})

	assert.Equal(t, taskdom.StatusPending, tk.Status)
	assert.Equal(t, taskdom.PriorityMedium, tk.Priority)
	assert.Equal(t, "Sin especificar", tk.FabricType)
	assert.Equal(t, "0 mts", tk.Quantity)
	assert.Equal(t, "Sin tiempo", tk.TimeLeft)
	assert.Equal(t, "0", tk.Completed)
	assert.Equal(t, "0h", tk.WorkedTime)
}

func TestTaskFromDocPreservesUnknownStatus(t *testing.T) {
	tk := taskFromDoc("o2", map[string]any{
		"estado":    "EN_REVISION",
		"prioridad": "EXPRESS",
	})

	assert.Equal(t, "EN_REVISION", tk.Status)
	assert.Equal(t, "EXPRESS", tk.Priority)
}

func TestDefectFromDocDefaults(t *testing.T) {
	d := defectFromDoc("d1", map[string]any{
		"numeroOrden": "ORD-9",
	})

	assert.Equal(t, defdom.DefaultSeverity, d.Severity)
	assert.Equal(t, defdom.DefaultStatus, d.Status)
	assert.Nil(t, d.ReportedAt)
	assert.Equal(t, "ORD-9", d.OrderNumber)
}

func TestProfileFromDoc(t *testing.T) {
	p := profileFromDoc("u1", map[string]any{
		"nombre":   "María Cohaila",
		"telefono": "+51 999 111 222",
	})

	assert.Equal(t, "u1", p.UserID)
	assert.Equal(t, "María Cohaila", p.Name)
	assert.Equal(t, "", p.Address)
}
