package production

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Prefijos de numeración de documentos.
const (
	BatchPrefix = "BATCH"
	SalePrefix  = "SALE"
)

// NumberPrefix devuelve el prefijo fechado, ej. "BATCH-20251015".
func NumberPrefix(prefix string, on time.Time) string {
	return fmt.Sprintf("%s-%s", prefix, on.UTC().Format("20060102"))
}

// NextNumber genera el siguiente número PREFIX-YYYYMMDD-NNN a partir del
// último número emitido con el mismo prefijo fechado ("" si es el primero
// del día). La secuencia evita colisiones dentro de la transacción que
// consulta el último número.
func NextNumber(prefix string, on time.Time, last string) string {
	datePrefix := NumberPrefix(prefix, on)
	seq := 1
	if last != "" {
		parts := strings.Split(last, "-")
		if len(parts) == 3 && parts[0]+"-"+parts[1] == datePrefix {
			if n, err := strconv.Atoi(parts[2]); err == nil {
				seq = n + 1
			}
		}
	}
	return fmt.Sprintf("%s-%03d", datePrefix, seq)
}
