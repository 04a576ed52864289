package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
)

const (
	MaxCustomerNameLength = 100
	MinTableNumber        = 1
	MaxTableNumber        = 999
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrEmptyOrder is returned when an order is built without lines.
	ErrEmptyOrder = errors.New("Order must contain at least one item")
)

// Order is the aggregate root of a customer order.
//
// Order follows these invariants:
//   - Has at least one line; line order is the order of the request
//   - Total is the sum of line subtotals rounded half-up to two decimals, computed once
//   - Number is assigned at construction and never changes
//   - Only the status and the updated-at timestamp change after construction
type Order struct {
	id           kernel.UUID
	number       Number
	customerName string
	tableNumber  int
	lines        []Line
	total        kernel.Money
	status       Status
	createdAt    time.Time
	updatedAt    time.Time

	isConstructed bool
}

// NewOrder builds a Pending order and freezes its total.
func NewOrder(
	id kernel.UUID,
	number Number,
	customerName string,
	tableNumber int,
	lines []Line,
	now time.Time,
) (*Order, error) {
	o := &Order{
		status:        Pending,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setNumber(number),
		o.setCustomerName(customerName),
		o.setTableNumber(tableNumber),
		o.setLines(lines),
	); err != nil {
		return nil, err
	}

	o.total = o.computeTotal()
	return o, nil
}

// RestoreOrder rebuilds an order from persisted state. The stored total must agree
// with the lines, otherwise the record is reported as invalid.
func RestoreOrder(
	id kernel.UUID,
	number Number,
	customerName string,
	tableNumber int,
	lines []Line,
	total kernel.Money,
	status Status,
	createdAt, updatedAt time.Time,
) (*Order, error) {
	o := &Order{
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setNumber(number),
		o.setCustomerName(customerName),
		o.setTableNumber(tableNumber),
		o.setLines(lines),
		o.setStatus(status),
	); err != nil {
		return nil, err
	}

	if computed := o.computeTotal(); !computed.Equal(total) {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"totalAmount",
			fmt.Errorf("stored %s does not match lines sum %s", total, computed),
		)
	}
	o.total = total
	return o, nil
}

func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID      { return o.id }
func (o *Order) Number() Number       { return o.number }
func (o *Order) CustomerName() string { return o.customerName }
func (o *Order) TableNumber() int     { return o.tableNumber }
func (o *Order) Total() kernel.Money  { return o.total }
func (o *Order) Status() Status       { return o.status }
func (o *Order) CreatedAt() time.Time { return o.createdAt }
func (o *Order) UpdatedAt() time.Time { return o.updatedAt }

// Lines returns a copy of the order lines in request order.
func (o *Order) Lines() []Line {
	return append([]Line(nil), o.lines...)
}

// ItemCount is the sum of line quantities.
func (o *Order) ItemCount() int {
	n := 0
	for _, l := range o.lines {
		n += l.quantity
	}
	return n
}

// ChangeStatus moves the order to next if policy allows it and stamps updatedAt with at.
// Lines and total are never touched.
func (o *Order) ChangeStatus(next Status, policy TransitionPolicy, at time.Time) error {
	if err := policy.Check(o.status, next); err != nil {
		return err
	}
	o.status = next
	o.updatedAt = at
	return nil
}

func (o *Order) computeTotal() kernel.Money {
	sum := kernel.ZeroMoney()
	for _, l := range o.lines {
		sum = sum.Add(l.Subtotal())
	}
	return sum.Round()
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setNumber(number Number) error {
	if number.IsZero() {
		return errs.NewValueIsRequiredError("orderNumber")
	}
	o.number = number
	return nil
}

func (o *Order) setCustomerName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("customerName")
	}
	if n := len([]rune(name)); n > MaxCustomerNameLength {
		return errs.NewValueIsOutOfRangeError("customerName length", n, 1, MaxCustomerNameLength)
	}
	o.customerName = name
	return nil
}

func (o *Order) setTableNumber(table int) error {
	if table < MinTableNumber || table > MaxTableNumber {
		return errs.NewValueIsOutOfRangeError("tableNumber", table, MinTableNumber, MaxTableNumber)
	}
	o.tableNumber = table
	return nil
}

func (o *Order) setLines(lines []Line) error {
	if len(lines) == 0 {
		return ErrEmptyOrder
	}
	for i, l := range lines {
		if l.quantity < 1 || l.itemID.Validate() != nil {
			return errs.NewValueIsInvalidErrorWithCause(
				"lines",
				fmt.Errorf("line %d was not built with NewLine", i),
			)
		}
	}
	o.lines = append([]Line(nil), lines...)
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}
