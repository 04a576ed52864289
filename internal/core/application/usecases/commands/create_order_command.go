package commands

import (
	"errors"
	"fmt"
	"strings"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// RequestedLine is one line of an order request: which item and how many.
type RequestedLine struct {
	ItemID   kernel.UUID
	Quantity int
}

// CreateOrderCommand represents a request to place a new order for a table.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(kernel.NewUUID(), "Asha", 12, []RequestedLine{
//	    {ItemID: paneerTikka, Quantity: 2},
//	    {ItemID: lassi, Quantity: 1},
//	})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	customerName string
	tableNumber  int
	lines        []RequestedLine

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates the request shape. Catalog checks happen in the handler.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	customerName string,
	tableNumber int,
	lines []RequestedLine,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomerName(customerName),
		cmd.setTableNumber(tableNumber),
		cmd.setLines(lines),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) OrderID() kernel.UUID { return c.orderID }
func (c CreateOrderCommand) CustomerName() string { return c.customerName }
func (c CreateOrderCommand) TableNumber() int     { return c.tableNumber }

// Lines returns the requested lines in request order.
func (c CreateOrderCommand) Lines() []RequestedLine {
	return append([]RequestedLine(nil), c.lines...)
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setCustomerName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("customerName")
	}
	if n := len([]rune(name)); n > order.MaxCustomerNameLength {
		return errs.NewValueIsOutOfRangeError("customerName length", n, 1, order.MaxCustomerNameLength)
	}
	c.customerName = name
	return nil
}

func (c *CreateOrderCommand) setTableNumber(table int) error {
	if table < order.MinTableNumber || table > order.MaxTableNumber {
		return errs.NewValueIsOutOfRangeError("tableNumber", table, order.MinTableNumber, order.MaxTableNumber)
	}
	c.tableNumber = table
	return nil
}

func (c *CreateOrderCommand) setLines(lines []RequestedLine) error {
	if len(lines) == 0 {
		return order.ErrEmptyOrder
	}
	var lineErrs []error
	for i, l := range lines {
		if err := l.ItemID.Validate(); err != nil {
			lineErrs = append(lineErrs, fmt.Errorf("items[%d]: %w", i, err))
		}
		if l.Quantity < 1 {
			lineErrs = append(lineErrs, fmt.Errorf("items[%d]: %w", i,
				errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is less than 1", l.Quantity))))
		}
	}
	if err := errors.Join(lineErrs...); err != nil {
		return err
	}
	c.lines = append([]RequestedLine(nil), lines...)
	return nil
}
