package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Decimal - число вида mantissa * 10^exp для поздних стадий игры,
// где балансы давно вышли за пределы int64 и точности float64.
// Мантисса нормализована: 1 <= |mant| < 10 (либо 0 для нуля).
//
// Тип НЕ клампит отрицательные значения: разность урона и защиты
// может быть меньше нуля, это валидный результат. За неотрицательность
// балансов отвечают вызывающие (см. economy.Ledger).
type Decimal struct {
	mant float64
	exp  int64
}

// Точность мантиссы float64 - примерно 17 значащих цифр.
// Слагаемые, отличающиеся больше чем на maxSigDigits порядков,
// не влияют друг на друга.
const maxSigDigits = 17

// Порог для компенсации представления float64 при Floor/Round:
// 224.99999999999997 считаем равным 225.
const floorEps = 1e-9

var DecimalZero = Decimal{}

// NewDecimal создает Decimal из float64.
func NewDecimal(v float64) Decimal {
	return normalize(v, 0)
}

// NewDecimalInt создает Decimal из целого.
func NewDecimalInt(v int64) Decimal {
	return normalize(float64(v), 0)
}

// ParseDecimal разбирает строковое представление ("1234", "2.35e45").
// Используется при восстановлении сохранений: сериализованное число
// нельзя использовать как Decimal без явной реконструкции.
func ParseDecimal(s string) (Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Decimal{}, fmt.Errorf("empty decimal string")
	}

	// Сначала пробуем обычный ParseFloat - покрывает все значения до ~1e308.
	if v, err := strconv.ParseFloat(s, 64); err == nil && !math.IsInf(v, 0) {
		return NewDecimal(v), nil
	}

	// Числа за пределами float64 разбираем вручную по разделителю "e".
	idx := strings.LastIndexAny(s, "eE")
	if idx <= 0 {
		return Decimal{}, fmt.Errorf("malformed decimal %q", s)
	}

	mant, err := strconv.ParseFloat(s[:idx], 64)
	if err != nil {
		return Decimal{}, fmt.Errorf("malformed decimal mantissa %q: %w", s, err)
	}
	exp, err := strconv.ParseInt(s[idx+1:], 10, 64)
	if err != nil {
		return Decimal{}, fmt.Errorf("malformed decimal exponent %q: %w", s, err)
	}

	return normalize(mant, exp), nil
}

// normalize приводит пару (mant, exp) к каноническому виду.
func normalize(mant float64, exp int64) Decimal {
	if mant == 0 || math.IsNaN(mant) {
		return Decimal{}
	}

	// Сдвигаем мантиссу в диапазон [1, 10).
	shift := int64(math.Floor(math.Log10(math.Abs(mant))))
	if shift != 0 {
		mant /= math.Pow(10, float64(shift))
		exp += shift
	}

	// Log10 на границах может дать сдвиг на единицу меньше/больше нужного.
	for math.Abs(mant) >= 10 {
		mant /= 10
		exp++
	}
	for math.Abs(mant) < 1 {
		mant *= 10
		exp--
	}

	return Decimal{mant: mant, exp: exp}
}

// IsZero сообщает, равно ли число нулю.
func (d Decimal) IsZero() bool {
	return d.mant == 0
}

// Sign возвращает -1, 0 или 1.
func (d Decimal) Sign() int {
	switch {
	case d.mant > 0:
		return 1
	case d.mant < 0:
		return -1
	default:
		return 0
	}
}

// Neg возвращает -d.
func (d Decimal) Neg() Decimal {
	return Decimal{mant: -d.mant, exp: d.exp}
}

// Add возвращает d + o.
func (d Decimal) Add(o Decimal) Decimal {
	if d.IsZero() {
		return o
	}
	if o.IsZero() {
		return d
	}

	// Большее по порядку слагаемое принимаем за базу.
	hi, lo := d, o
	if o.exp > d.exp {
		hi, lo = o, d
	}

	diff := hi.exp - lo.exp
	if diff > maxSigDigits {
		return hi // Меньшее слагаемое за пределами точности
	}

	return normalize(hi.mant+lo.mant/math.Pow(10, float64(diff)), hi.exp)
}

// Sub возвращает d - o. Результат может быть отрицательным.
func (d Decimal) Sub(o Decimal) Decimal {
	return d.Add(o.Neg())
}

// Mul возвращает d * o.
func (d Decimal) Mul(o Decimal) Decimal {
	if d.IsZero() || o.IsZero() {
		return Decimal{}
	}
	return normalize(d.mant*o.mant, d.exp+o.exp)
}

// MulFloat возвращает d * v.
func (d Decimal) MulFloat(v float64) Decimal {
	return d.Mul(NewDecimal(v))
}

// Div возвращает d / o. Деление на ноль дает ноль: в формулах игры
// делители статические и ненулевые, отдельной ветки ошибки не нужно.
func (d Decimal) Div(o Decimal) Decimal {
	if o.IsZero() {
		return Decimal{}
	}
	if d.IsZero() {
		return Decimal{}
	}
	return normalize(d.mant/o.mant, d.exp-o.exp)
}

// DivFloat возвращает d / v.
func (d Decimal) DivFloat(v float64) Decimal {
	return d.Div(NewDecimal(v))
}

// Pow возвращает d^x. Основной потребитель - кривые роста
// (1.2^(stage-1) и подобные).
func (d Decimal) Pow(x float64) Decimal {
	if d.IsZero() {
		if x == 0 {
			return NewDecimalInt(1)
		}
		return Decimal{}
	}

	// В пределах float64 считаем напрямую - math.Pow точнее
	// логарифмического пути для целых степеней.
	if v := d.Float64(); !math.IsInf(v, 0) {
		if r := math.Pow(v, x); !math.IsInf(r, 0) && r != 0 {
			return NewDecimal(r)
		}
	}

	// Общий случай: 10^(x * log10(d)).
	t := x * d.Log10()
	e := math.Floor(t)
	return normalize(math.Pow(10, t-e), int64(e))
}

// PowFloat - сокращение для NewDecimal(base).Pow(x), под формулы каталога.
func PowFloat(base, x float64) Decimal {
	return NewDecimal(base).Pow(x)
}

// Floor отбрасывает дробную часть (к меньшему).
func (d Decimal) Floor() Decimal {
	if d.exp >= maxSigDigits {
		return d // Дробной части уже нет в пределах точности
	}

	v := d.Float64()
	r := math.Round(v)
	if math.Abs(v-r) < floorEps*math.Max(1, math.Abs(v)) {
		return NewDecimal(r)
	}
	return NewDecimal(math.Floor(v))
}

// Cmp возвращает -1/0/+1 как в bytes.Compare.
func (d Decimal) Cmp(o Decimal) int {
	ds, os := d.Sign(), o.Sign()
	if ds != os {
		if ds < os {
			return -1
		}
		return 1
	}
	if ds == 0 {
		return 0
	}

	// Знаки совпадают: сравниваем порядки, затем мантиссы.
	if d.exp != o.exp {
		if (d.exp < o.exp) == (ds > 0) {
			return -1
		}
		return 1
	}

	diff := d.mant - o.mant
	if math.Abs(diff) < 1e-12 {
		return 0
	}
	if diff < 0 {
		return -1
	}
	return 1
}

func (d Decimal) Lt(o Decimal) bool  { return d.Cmp(o) < 0 }
func (d Decimal) Lte(o Decimal) bool { return d.Cmp(o) <= 0 }
func (d Decimal) Gt(o Decimal) bool  { return d.Cmp(o) > 0 }
func (d Decimal) Gte(o Decimal) bool { return d.Cmp(o) >= 0 }
func (d Decimal) Eq(o Decimal) bool  { return d.Cmp(o) == 0 }

// Max возвращает большее из двух.
func (d Decimal) Max(o Decimal) Decimal {
	if d.Cmp(o) >= 0 {
		return d
	}
	return o
}

// Min возвращает меньшее из двух.
func (d Decimal) Min(o Decimal) Decimal {
	if d.Cmp(o) <= 0 {
		return d
	}
	return o
}

// Log10 возвращает десятичный логарифм. Для нуля и отрицательных - NaN.
func (d Decimal) Log10() float64 {
	if d.mant <= 0 {
		return math.NaN()
	}
	return float64(d.exp) + math.Log10(d.mant)
}

// Float64 возвращает приближение в float64 (за пределами ~1e308 - Inf).
func (d Decimal) Float64() float64 {
	if d.IsZero() {
		return 0
	}
	return d.mant * math.Pow(10, float64(d.exp))
}

// ToFixed форматирует число с фиксированным количеством знаков после запятой.
func (d Decimal) ToFixed(places int) string {
	if d.IsZero() {
		if places <= 0 {
			return "0"
		}
		return "0." + strings.Repeat("0", places)
	}

	if d.exp < 21 && d.exp > -21 {
		return strconv.FormatFloat(d.Float64(), 'f', places, 64)
	}

	// Очень большие числа: цифры мантиссы + хвост нулей.
	if d.exp > 0 {
		mantStr := strconv.FormatFloat(math.Abs(d.mant), 'f', -1, 64)
		mantStr = strings.Replace(mantStr, ".", "", 1)
		zeros := int(d.exp) - (len(mantStr) - 1)
		if zeros > 0 {
			mantStr += strings.Repeat("0", zeros)
		}
		if d.mant < 0 {
			mantStr = "-" + mantStr
		}
		if places > 0 {
			mantStr += "." + strings.Repeat("0", places)
		}
		return mantStr
	}

	// Очень маленькие числа с точки зрения игры - ноль.
	if places <= 0 {
		return "0"
	}
	return "0." + strings.Repeat("0", places)
}

// Суффиксы сокращенной записи. После Dc переключаемся на экспоненту.
var abbrevPostfixes = []string{"", "K", "M", "B", "T", "Qa", "Qi", "Sx", "Sp", "Oc", "No", "Dc"}

// Abbrev возвращает человекочитаемую запись: 1.2K, 45.0M, 3.5Dc, 1.23e40.
func (d Decimal) Abbrev() string {
	if d.IsZero() {
		return "0"
	}
	if d.Sign() < 0 {
		return "-" + d.Neg().Abbrev()
	}
	if d.Lt(NewDecimalInt(1)) {
		return d.ToFixed(2)
	}
	if d.Lt(NewDecimalInt(1000)) {
		if s := d.ToFixed(0); len(s) <= 3 {
			return s
		}
		// 999.5..1000 округляется до "1000" - уводим в ярус K.
		d = NewDecimalInt(1000)
	}

	power := int64(math.Floor(d.Log10()))
	tier := power / 3

	if int(tier) < len(abbrevPostfixes) {
		scale := d.Div(PowFloat(10, float64(tier*3)))
		return scale.ToFixed(1) + abbrevPostfixes[tier]
	}

	return d.Exponential(2)
}

// Exponential возвращает научную запись с указанным числом знаков мантиссы.
func (d Decimal) Exponential(places int) string {
	if d.IsZero() {
		return "0e0"
	}
	return fmt.Sprintf("%.*fe%d", places, d.mant, d.exp)
}

// String возвращает компактное представление (для логов и сериализации).
func (d Decimal) String() string {
	if d.exp > -7 && d.exp < 21 {
		return strconv.FormatFloat(d.Float64(), 'f', -1, 64)
	}
	return strconv.FormatFloat(d.mant, 'f', -1, 64) + "e" + strconv.FormatInt(d.exp, 10)
}

// MarshalJSON сериализует число строкой: JSON-число потеряло бы
// и точность, и диапазон.
func (d Decimal) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(d.String())), nil
}

// UnmarshalJSON принимает и строку, и сырое число (для старых сохранений).
func (d *Decimal) UnmarshalJSON(data []byte) error {
	s := string(data)
	if unquoted, err := strconv.Unquote(s); err == nil {
		s = unquoted
	}

	parsed, err := ParseDecimal(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
