package inrange

import (
	"fmt"
	"reflect"

	"github.com/cespare/xxhash/v2"

	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/lo"
	"github.com/iotaledger/hive.go/log"
	"github.com/iotaledger/hive.go/runtime/options"
	"github.com/iotaledger/hive.go/stringify"
)

// Dynamic is the type-erased counterpart of Range. It is meant for callers that only know the type of the bounds at
// runtime (i.e. rule engines that load their rules from a configuration).
//
// The type of the bounds is fixed when the Dynamic range is created. Testing it with a value of a different type fails
// with ErrTypeMismatch instead of silently returning a result.
type Dynamic struct {
	// start holds the lower bound (nil if the range is unbounded below).
	start any

	// end holds the upper bound (nil if the range is unbounded above).
	end any

	// startInclusive defines if the start value itself is part of the range.
	startInclusive bool

	// endInclusive defines if the end value itself is part of the range.
	endInclusive bool

	// valueType is the type of the bounds (nil if the range is unbounded on both sides).
	valueType reflect.Type

	// compare is the order of valueType.
	compare func(a, b reflect.Value) int

	// logger reports the creation of the range.
	logger log.Logger
}

// WithDynamicStart sets the lower bound of the Dynamic range. A nil start leaves the range unbounded below.
func WithDynamicStart(start any) options.Option[Dynamic] {
	return func(d *Dynamic) {
		d.start = start
	}
}

// WithDynamicEnd sets the upper bound of the Dynamic range. A nil end leaves the range unbounded above.
func WithDynamicEnd(end any) options.Option[Dynamic] {
	return func(d *Dynamic) {
		d.end = end
	}
}

// WithDynamicStartInclusive defines if the start value is part of the Dynamic range (default: true).
func WithDynamicStartInclusive(startInclusive bool) options.Option[Dynamic] {
	return func(d *Dynamic) {
		d.startInclusive = startInclusive
	}
}

// WithDynamicEndInclusive defines if the end value is part of the Dynamic range (default: true).
func WithDynamicEndInclusive(endInclusive bool) options.Option[Dynamic] {
	return func(d *Dynamic) {
		d.endInclusive = endInclusive
	}
}

// WithDynamicLogger sets the logger that is used to report the creation of the Dynamic range.
func WithDynamicLogger(logger log.Logger) options.Option[Dynamic] {
	return func(d *Dynamic) {
		d.logger = logger
	}
}

// NewDynamic creates a new Dynamic range. It fails if start and end are of different types or if their type has no
// natural order.
func NewDynamic(opts ...options.Option[Dynamic]) (*Dynamic, error) {
	d := options.Apply(&Dynamic{
		startInclusive: true,
		endInclusive:   true,
		logger:         log.EmptyLogger,
	}, opts)

	if d.start != nil {
		d.valueType = reflect.TypeOf(d.start)
	}

	if d.end != nil {
		if endType := reflect.TypeOf(d.end); d.valueType == nil {
			d.valueType = endType
		} else if endType != d.valueType {
			return nil, ierrors.Wrapf(ErrTypeMismatch, "start is of type %s but end is of type %s", d.valueType, endType)
		}
	}

	if d.valueType != nil {
		compare, err := comparatorFor(d.valueType)
		if err != nil {
			return nil, ierrors.Wrap(err, "failed to create dynamic range")
		}
		d.compare = compare
	}

	if d.Empty() {
		d.logger.LogWarn("created dynamic range that can never match", "range", d.Notation())
	} else {
		d.logger.LogDebug("created dynamic range", "range", d.Notation(), "type", d.valueType)
	}

	return d, nil
}

// Test returns true if the value lies within the range. Absent values are never contained.
func (d *Dynamic) Test(value any) (bool, error) {
	if value == nil {
		return false, nil
	}

	return d.TestDual(value, value)
}

// TestDual returns true if the interval [low, high] overlaps the range. It returns false if either of the values is
// absent and ErrTypeMismatch if a value does not have the type of the bounds.
func (d *Dynamic) TestDual(low, high any) (bool, error) {
	if low == nil || high == nil {
		return false, nil
	}

	if d.valueType == nil {
		return true, nil
	}

	lowValue, err := d.reflectValue(low)
	if err != nil {
		return false, ierrors.Wrap(err, "invalid low value")
	}

	highValue, err := d.reflectValue(high)
	if err != nil {
		return false, ierrors.Wrap(err, "invalid high value")
	}

	if d.start != nil {
		if cmp := d.compare(highValue, reflect.ValueOf(d.start)); cmp < 0 || (cmp == 0 && !d.startInclusive) {
			return false, nil
		}
	}

	if d.end != nil {
		if cmp := d.compare(lowValue, reflect.ValueOf(d.end)); cmp > 0 || (cmp == 0 && !d.endInclusive) {
			return false, nil
		}
	}

	return true, nil
}

// Start returns the lower bound (nil if the range is unbounded below).
func (d *Dynamic) Start() any {
	return d.start
}

// End returns the upper bound (nil if the range is unbounded above).
func (d *Dynamic) End() any {
	return d.end
}

// StartInclusive returns true if the start value is part of the range.
func (d *Dynamic) StartInclusive() bool {
	return d.startInclusive
}

// EndInclusive returns true if the end value is part of the range.
func (d *Dynamic) EndInclusive() bool {
	return d.endInclusive
}

// ValueType returns the type of the bounds (nil if the range is unbounded on both sides).
func (d *Dynamic) ValueType() reflect.Type {
	return d.valueType
}

// Empty returns true if no value can ever lie within the range.
func (d *Dynamic) Empty() bool {
	if d.start == nil || d.end == nil {
		return false
	}

	cmp := d.compare(reflect.ValueOf(d.start), reflect.ValueOf(d.end))

	return cmp > 0 || (cmp == 0 && !(d.startInclusive && d.endInclusive))
}

// Equal returns true if both ranges have bounds of the same type, equal bounds and the same inclusivity flags. Bounds
// are compared by their canonical encoding, the same one that Hash uses.
func (d *Dynamic) Equal(other *Dynamic) bool {
	if d == other {
		return true
	}

	if d == nil || other == nil {
		return false
	}

	return d.valueType == other.valueType &&
		d.startInclusive == other.startInclusive &&
		d.endInclusive == other.endInclusive &&
		boundKey(d.start) == boundKey(other.start) &&
		boundKey(d.end) == boundKey(other.end)
}

// Hash returns a digest of the range that is identical for equal ranges.
func (d *Dynamic) Hash() uint64 {
	digest := xxhash.New()
	_, _ = fmt.Fprintf(digest, "%v|%s|%s|", d.valueType, boundKey(d.start), boundKey(d.end))
	_, _ = fmt.Fprintf(digest, "%t|%t", d.startInclusive, d.endInclusive)

	return digest.Sum64()
}

// Notation returns the interval notation of the range (i.e. "[10 ... 20)").
func (d *Dynamic) Notation() string {
	return notation(fmt.Sprint(d.start), fmt.Sprint(d.end), d.start != nil, d.end != nil, d.startInclusive, d.endInclusive)
}

// String returns a human-readable version of the range.
func (d *Dynamic) String() string {
	return stringify.Struct("Dynamic",
		stringify.NewStructField("type", fmt.Sprint(d.valueType)),
		stringify.NewStructField("start", fmt.Sprint(d.start)),
		stringify.NewStructField("end", fmt.Sprint(d.end)),
		stringify.NewStructField("startInclusive", d.startInclusive),
		stringify.NewStructField("endInclusive", d.endInclusive),
	)
}

// reflectValue checks that the value has the type of the bounds and returns its reflected value.
func (d *Dynamic) reflectValue(value any) (reflect.Value, error) {
	if valueType := reflect.TypeOf(value); valueType != d.valueType {
		return reflect.Value{}, ierrors.Wrapf(ErrTypeMismatch, "expected %s but got %s", d.valueType, valueType)
	}

	return reflect.ValueOf(value), nil
}

// comparatorFor returns the order of the given type. Types with a method "Compare(T) int" use that method, all other
// types need to be integers, floats or strings.
func comparatorFor(valueType reflect.Type) (func(a, b reflect.Value) int, error) {
	if method, exists := valueType.MethodByName("Compare"); exists && isCompareMethod(method.Type, valueType) {
		return func(a, b reflect.Value) int {
			return int(method.Func.Call([]reflect.Value{a, b})[0].Int())
		}, nil
	}

	//nolint:exhaustive // only ordered kinds are supported
	switch valueType.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return func(a, b reflect.Value) int { return lo.Comparator(a.Int(), b.Int()) }, nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return func(a, b reflect.Value) int { return lo.Comparator(a.Uint(), b.Uint()) }, nil
	case reflect.Float32, reflect.Float64:
		return func(a, b reflect.Value) int { return lo.Comparator(a.Float(), b.Float()) }, nil
	case reflect.String:
		return func(a, b reflect.Value) int { return lo.Comparator(a.String(), b.String()) }, nil
	default:
		return nil, ierrors.Wrapf(ErrUnsupportedType, "%s has no natural order", valueType)
	}
}

// isCompareMethod checks if the method type (including its receiver) is of the form func(T, T) int.
func isCompareMethod(methodType reflect.Type, valueType reflect.Type) bool {
	return methodType.NumIn() == 2 &&
		methodType.In(1) == valueType &&
		methodType.NumOut() == 1 &&
		methodType.Out(0).Kind() == reflect.Int
}
