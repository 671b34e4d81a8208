package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/everflown/logistics-api/internal/application/dto"
	"github.com/everflown/logistics-api/internal/application/usecase"
	"github.com/everflown/logistics-api/internal/domain"
	"github.com/everflown/logistics-api/internal/domain/entity"
	"github.com/everflown/logistics-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type memQuoteRepo struct {
	byID map[string]*entity.Quote
}

func newMemQuoteRepo() *memQuoteRepo {
	return &memQuoteRepo{byID: map[string]*entity.Quote{}}
}

func (r *memQuoteRepo) Create(q *entity.Quote) error {
	cp := *q
	r.byID[q.ID] = &cp
	return nil
}

func (r *memQuoteRepo) GetByID(id string) (*entity.Quote, error) {
	q, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *q
	return &cp, nil
}

func (r *memQuoteRepo) Update(q *entity.Quote) error {
	if _, ok := r.byID[q.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *q
	r.byID[q.ID] = &cp
	return nil
}

func (r *memQuoteRepo) List(limit, offset int) ([]*entity.Quote, error) { return nil, nil }
func (r *memQuoteRepo) ListAll() ([]*entity.Quote, error)               { return nil, nil }
func (r *memQuoteRepo) Delete(id string) error {
	delete(r.byID, id)
	return nil
}

type memOrderRepo struct {
	byID       map[string]*entity.Order
	failCreate error
}

func newMemOrderRepo() *memOrderRepo {
	return &memOrderRepo{byID: map[string]*entity.Order{}}
}

func (r *memOrderRepo) Create(o *entity.Order) error {
	if r.failCreate != nil {
		return r.failCreate
	}
	cp := *o
	r.byID[o.ID] = &cp
	return nil
}

func (r *memOrderRepo) GetByID(id string) (*entity.Order, error) {
	o, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *o
	return &cp, nil
}

func (r *memOrderRepo) Update(o *entity.Order) error {
	cp := *o
	r.byID[o.ID] = &cp
	return nil
}

func (r *memOrderRepo) List(limit, offset int) ([]*entity.Order, error) { return nil, nil }
func (r *memOrderRepo) ListAll() ([]*entity.Order, error)               { return nil, nil }
func (r *memOrderRepo) Delete(id string) error                          { return nil }

type memLeadRepo struct {
	byID map[string]*entity.Lead
}

func newMemLeadRepo() *memLeadRepo {
	return &memLeadRepo{byID: map[string]*entity.Lead{}}
}

func (r *memLeadRepo) Create(l *entity.Lead) error {
	cp := *l
	r.byID[l.ID] = &cp
	return nil
}

func (r *memLeadRepo) GetByID(id string) (*entity.Lead, error) {
	l, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *l
	return &cp, nil
}

func (r *memLeadRepo) Update(l *entity.Lead) error {
	cp := *l
	r.byID[l.ID] = &cp
	return nil
}

func (r *memLeadRepo) List(limit, offset int) ([]*entity.Lead, error) { return nil, nil }
func (r *memLeadRepo) Delete(id string) error                         { return nil }

// memTxRunner emula la semántica transaccional: toma un snapshot de los datos
// antes de ejecutar fn y lo restaura si fn retorna error (rollback).
type memTxRunner struct {
	quotes *memQuoteRepo
	orders *memOrderRepo
}

func (tx *memTxRunner) RunQuoteAccept(ctx context.Context, fn func(
	quoteRepo repository.QuoteRepository,
	orderRepo repository.OrderRepository,
) error) error {
	quoteSnap := map[string]*entity.Quote{}
	for id, q := range tx.quotes.byID {
		cp := *q
		quoteSnap[id] = &cp
	}
	orderSnap := map[string]*entity.Order{}
	for id, o := range tx.orders.byID {
		cp := *o
		orderSnap[id] = &cp
	}

	if err := fn(tx.quotes, tx.orders); err != nil {
		tx.quotes.byID = quoteSnap
		tx.orders.byID = orderSnap
		return err
	}
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Fixture
// ──────────────────────────────────────────────────────────────────────────────

type acceptFixture struct {
	uc     *usecase.QuoteUseCase
	quotes *memQuoteRepo
	orders *memOrderRepo
	leads  *memLeadRepo
}

func newAcceptFixture() *acceptFixture {
	quotes := newMemQuoteRepo()
	orders := newMemOrderRepo()
	leads := newMemLeadRepo()
	tx := &memTxRunner{quotes: quotes, orders: orders}
	return &acceptFixture{
		uc:     usecase.NewQuoteUseCase(quotes, leads, tx),
		quotes: quotes,
		orders: orders,
		leads:  leads,
	}
}

func sentQuote(id string, validUntil time.Time) *entity.Quote {
	leadID := "lead-1"
	return &entity.Quote{
		ID:               id,
		QuoteNumber:      "QT-1001",
		LeadID:           &leadID,
		OriginCity:       "Dallas",
		OriginState:      "TX",
		DestinationCity:  "Atlanta",
		DestinationState: "GA",
		EquipmentType:    "dry_van",
		QuotedRate:       decimal.NewFromInt(2500),
		ValidUntil:       validUntil,
		Status:           entity.QuoteStatusSent,
		CreatedAt:        time.Now(),
		UpdatedAt:        time.Now(),
	}
}

func acceptRequest() dto.AcceptQuoteRequest {
	return dto.AcceptQuoteRequest{
		OriginAddress:      "100 Main St",
		OriginZipCode:      "75201",
		DestinationAddress: "200 Peach St",
		DestinationZipCode: "30301",
		PickupDate:         time.Now().Add(48 * time.Hour),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Accept
// ──────────────────────────────────────────────────────────────────────────────

// Camino feliz: la cotización pasa a accepted, se crea la orden con los datos
// de la cotización y el lead ligado queda converted.
func TestAccept_CotizacionVigente_CreaOrden(t *testing.T) {
	f := newAcceptFixture()
	require.NoError(t, f.quotes.Create(sentQuote("q-1", time.Now().Add(7*24*time.Hour))))
	require.NoError(t, f.leads.Create(&entity.Lead{
		ID:     "lead-1",
		Status: entity.LeadStatusQuoted,
	}))

	order, err := f.uc.Accept(context.Background(), "q-1", acceptRequest())
	require.NoError(t, err)
	require.NotNil(t, order)

	assert.Equal(t, entity.OrderStatusNeedsTruck, order.Status, "la orden nace en needs_truck")
	assert.Equal(t, "Dallas", order.OriginCity, "la ruta se hereda de la cotización")
	assert.Equal(t, "100 Main St", order.OriginAddress, "la dirección viene del request")
	require.NotNil(t, order.QuoteID)
	assert.Equal(t, "q-1", *order.QuoteID)
	assert.True(t, decimal.NewFromInt(2500).Equal(order.CustomerRate),
		"la tarifa de cliente se hereda de la cotización")

	stored, err := f.quotes.GetByID("q-1")
	require.NoError(t, err)
	assert.Equal(t, entity.QuoteStatusAccepted, stored.Status)

	lead, err := f.leads.GetByID("lead-1")
	require.NoError(t, err)
	assert.Equal(t, entity.LeadStatusConverted, lead.Status,
		"el lead ligado debe quedar converted")
}

// Si el alta de la orden falla, el rollback debe devolver la cotización a su
// estado anterior: nada queda a medias.
func TestAccept_FallaCrearOrden_RevierteCotizacion(t *testing.T) {
	f := newAcceptFixture()
	require.NoError(t, f.quotes.Create(sentQuote("q-1", time.Now().Add(7*24*time.Hour))))
	f.orders.failCreate = errors.New("insert falló")

	order, err := f.uc.Accept(context.Background(), "q-1", acceptRequest())
	require.Error(t, err)
	assert.Nil(t, order)

	stored, err := f.quotes.GetByID("q-1")
	require.NoError(t, err)
	assert.Equal(t, entity.QuoteStatusSent, stored.Status,
		"el rollback debe dejar la cotización en sent")
	assert.Empty(t, f.orders.byID, "no debe quedar ninguna orden creada")
}

// Una cotización en draft no puede aceptarse: draft → accepted no es una
// transición válida.
func TestAccept_CotizacionEnDraft_TransicionIlegal(t *testing.T) {
	f := newAcceptFixture()
	q := sentQuote("q-1", time.Now().Add(7*24*time.Hour))
	q.Status = entity.QuoteStatusDraft
	require.NoError(t, f.quotes.Create(q))

	_, err := f.uc.Accept(context.Background(), "q-1", acceptRequest())
	assert.ErrorIs(t, err, domain.ErrIllegalTransition)

	stored, _ := f.quotes.GetByID("q-1")
	assert.Equal(t, entity.QuoteStatusDraft, stored.Status)
}

// Una cotización vencida no se acepta aunque su estado almacenado siga en
// "sent": el estado derivado manda.
func TestAccept_CotizacionVencida_Conflicto(t *testing.T) {
	f := newAcceptFixture()
	require.NoError(t, f.quotes.Create(sentQuote("q-1", time.Now().Add(-24*time.Hour))))

	_, err := f.uc.Accept(context.Background(), "q-1", acceptRequest())
	assert.ErrorIs(t, err, domain.ErrConflict)

	stored, _ := f.quotes.GetByID("q-1")
	assert.Equal(t, entity.QuoteStatusSent, stored.Status,
		"el estado almacenado no debe cambiar")
	assert.Empty(t, f.orders.byID)
}

// ID inexistente → ErrNotFound.
func TestAccept_CotizacionInexistente_NotFound(t *testing.T) {
	f := newAcceptFixture()

	_, err := f.uc.Accept(context.Background(), "no-existe", acceptRequest())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Si el lead ya está en estado terminal, la orden sigue siendo válida y el
// lead no cambia (conversión best-effort).
func TestAccept_LeadYaPerdido_OrdenIgualSeCrea(t *testing.T) {
	f := newAcceptFixture()
	require.NoError(t, f.quotes.Create(sentQuote("q-1", time.Now().Add(7*24*time.Hour))))
	require.NoError(t, f.leads.Create(&entity.Lead{
		ID:     "lead-1",
		Status: entity.LeadStatusLost,
	}))

	order, err := f.uc.Accept(context.Background(), "q-1", acceptRequest())
	require.NoError(t, err)
	require.NotNil(t, order)

	lead, _ := f.leads.GetByID("lead-1")
	assert.Equal(t, entity.LeadStatusLost, lead.Status,
		"un lead en estado terminal no se toca")
}
