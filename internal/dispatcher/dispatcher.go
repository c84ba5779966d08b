// Package dispatcher binds platform events to service calls through a
// plain table keyed by event kind. Transports construct Events; nothing
// here knows about wire formats.
package dispatcher

import (
	"context"
	"errors"
	"fmt"

	"github.com/autmail/maillist-server/internal/model"
)

// ErrUnknownKind is returned for events no handler is bound to.
var ErrUnknownKind = errors.New("unknown event kind")

// Kind identifies a platform event.
type Kind string

const (
	KindRegister   Kind = "register"
	KindGetEmail   Kind = "get_email"
	KindCreateList Kind = "create_list"
	KindGetList    Kind = "get_list"
	KindAddToList  Kind = "add_to_list"
)

// Event is one platform event. Which fields are meaningful depends on the
// kind: Register uses UserID+Email, CreateList uses Title, AddToList uses
// UserID+ListID, GetList and GetEmail use ListID and UserID respectively.
type Event struct {
	Kind   Kind
	UserID int64
	Email  string
	Title  string
	ListID int64
}

// Result carries whatever the handled event produced.
type Result struct {
	Email          string
	ListID         int64
	Entries        []string
	AlreadyPresent bool
}

// HandlerFunc handles one event kind.
type HandlerFunc func(ctx context.Context, ev Event) (Result, error)

// RegistryService is the registry surface the dispatcher binds to.
type RegistryService interface {
	Register(ctx context.Context, userID int64, email string) (string, error)
	Lookup(ctx context.Context, userID int64) (string, error)
}

// ListService is the list-mutation surface the dispatcher binds to.
type ListService interface {
	CreateList(ctx context.Context, title string) (int64, error)
	Append(ctx context.Context, userID, listID int64) (model.AppendResult, error)
	Entries(ctx context.Context, listID int64) ([]string, error)
}

// Dispatcher routes events to handlers.
type Dispatcher struct {
	registry RegistryService
	lists    ListService
	handlers map[Kind]HandlerFunc
}

func New(registry RegistryService, lists ListService) *Dispatcher {
	d := &Dispatcher{
		registry: registry,
		lists:    lists,
	}
	d.handlers = map[Kind]HandlerFunc{
		KindRegister:   d.register,
		KindGetEmail:   d.getEmail,
		KindCreateList: d.createList,
		KindGetList:    d.getList,
		KindAddToList:  d.addToList,
	}
	return d
}

// Dispatch routes ev to the handler bound to its kind.
func (d *Dispatcher) Dispatch(ctx context.Context, ev Event) (Result, error) {
	h, ok := d.handlers[ev.Kind]
	if !ok {
		return Result{}, fmt.Errorf("%w: %q", ErrUnknownKind, ev.Kind)
	}
	return h(ctx, ev)
}

func (d *Dispatcher) register(ctx context.Context, ev Event) (Result, error) {
	email, err := d.registry.Register(ctx, ev.UserID, ev.Email)
	if err != nil {
		return Result{}, err
	}
	return Result{Email: email}, nil
}

func (d *Dispatcher) getEmail(ctx context.Context, ev Event) (Result, error) {
	email, err := d.registry.Lookup(ctx, ev.UserID)
	if err != nil {
		return Result{}, err
	}
	return Result{Email: email}, nil
}

func (d *Dispatcher) createList(ctx context.Context, ev Event) (Result, error) {
	id, err := d.lists.CreateList(ctx, ev.Title)
	if err != nil {
		return Result{}, err
	}
	return Result{ListID: id, Entries: []string{}}, nil
}

func (d *Dispatcher) getList(ctx context.Context, ev Event) (Result, error) {
	entries, err := d.lists.Entries(ctx, ev.ListID)
	if err != nil {
		return Result{}, err
	}
	return Result{ListID: ev.ListID, Entries: entries}, nil
}

func (d *Dispatcher) addToList(ctx context.Context, ev Event) (Result, error) {
	res, err := d.lists.Append(ctx, ev.UserID, ev.ListID)
	if err != nil {
		return Result{}, err
	}
	return Result{ListID: ev.ListID, Entries: res.Entries, AlreadyPresent: res.AlreadyPresent}, nil
}
