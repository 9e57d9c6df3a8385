package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pdvcaixa/caixa-api/internal/domain/entity"
	"github.com/pdvcaixa/caixa-api/internal/domain/repository"
)

type fakeSaleRepo struct {
	sales      map[uuid.UUID]*entity.Sale
	replaceErr error
}

func newFakeSaleRepo() *fakeSaleRepo {
	return &fakeSaleRepo{sales: make(map[uuid.UUID]*entity.Sale)}
}

func (r *fakeSaleRepo) Create(_ context.Context, sale *entity.Sale) error {
	if sale.ID == uuid.Nil {
		sale.ID = uuid.New()
	}
	if sale.CreatedAt.IsZero() {
		sale.CreatedAt = time.Now()
	}
	r.sales[sale.ID] = sale
	return nil
}

func (r *fakeSaleRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Sale, error) {
	return r.sales[id], nil
}

func (r *fakeSaleRepo) GetWithDetails(_ context.Context, id uuid.UUID) (*entity.Sale, error) {
	return r.sales[id], nil
}

func (r *fakeSaleRepo) ReplaceContents(_ context.Context, sale *entity.Sale) error {
	if r.replaceErr != nil {
		return r.replaceErr
	}
	r.sales[sale.ID] = sale
	return nil
}

func (r *fakeSaleRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.sales, id)
	return nil
}

func (r *fakeSaleRepo) List(_ context.Context, _ *repository.SaleFilterParams) ([]entity.Sale, error) {
	out := make([]entity.Sale, 0, len(r.sales))
	for _, s := range r.sales {
		out = append(out, *s)
	}
	return out, nil
}

func (r *fakeSaleRepo) Count(_ context.Context, _ *repository.SaleFilterParams) (int64, error) {
	return int64(len(r.sales)), nil
}

type fakeProductRepo struct {
	products map[uuid.UUID]*entity.Product
}

func newFakeProductRepo(products ...*entity.Product) *fakeProductRepo {
	r := &fakeProductRepo{products: make(map[uuid.UUID]*entity.Product)}
	for _, p := range products {
		if p.ID == uuid.Nil {
			p.ID = uuid.New()
		}
		r.products[p.ID] = p
	}
	return r
}

func (r *fakeProductRepo) Create(_ context.Context, p *entity.Product) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.products[p.ID] = p
	return nil
}

func (r *fakeProductRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Product, error) {
	return r.products[id], nil
}

func (r *fakeProductRepo) GetByIDs(_ context.Context, ids []uuid.UUID) ([]entity.Product, error) {
	out := make([]entity.Product, 0, len(ids))
	seen := make(map[uuid.UUID]bool)
	for _, id := range ids {
		if p, ok := r.products[id]; ok && !seen[id] {
			out = append(out, *p)
			seen[id] = true
		}
	}
	return out, nil
}

func (r *fakeProductRepo) Update(_ context.Context, p *entity.Product) error {
	r.products[p.ID] = p
	return nil
}

func (r *fakeProductRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.products, id)
	return nil
}

func (r *fakeProductRepo) List(_ context.Context) ([]entity.Product, error) {
	out := make([]entity.Product, 0, len(r.products))
	for _, p := range r.products {
		out = append(out, *p)
	}
	return out, nil
}

func (r *fakeProductRepo) ListByCategory(_ context.Context, category string) ([]entity.Product, error) {
	out := make([]entity.Product, 0)
	for _, p := range r.products {
		if p.Category != nil && *p.Category == category {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) AtomicDecrementBatch(_ context.Context, decrements map[uuid.UUID]int) ([]uuid.UUID, error) {
	var failed []uuid.UUID
	for id, amount := range decrements {
		p, ok := r.products[id]
		if !ok {
			failed = append(failed, id)
			continue
		}
		if p.Stock >= 0 && p.Stock < amount {
			failed = append(failed, id)
		}
	}
	if len(failed) > 0 {
		return failed, nil
	}
	for id, amount := range decrements {
		if p := r.products[id]; p.Stock >= 0 {
			p.Stock -= amount
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) AtomicIncrementBatch(_ context.Context, increments map[uuid.UUID]int) error {
	for id, amount := range increments {
		if p, ok := r.products[id]; ok && p.Stock >= 0 {
			p.Stock += amount
		}
	}
	return nil
}

func (r *fakeProductRepo) GetAdditionalCategories(_ context.Context, _ uuid.UUID) ([]entity.AdditionalCategory, error) {
	return nil, nil
}

func (r *fakeProductRepo) ReplaceAdditionalCategories(_ context.Context, _ uuid.UUID, _ []uuid.UUID) error {
	return nil
}

type fakeAdditionalRepo struct {
	additionals map[uuid.UUID]*entity.Additional
}

func newFakeAdditionalRepo(additionals ...*entity.Additional) *fakeAdditionalRepo {
	r := &fakeAdditionalRepo{additionals: make(map[uuid.UUID]*entity.Additional)}
	for _, a := range additionals {
		if a.ID == uuid.Nil {
			a.ID = uuid.New()
		}
		r.additionals[a.ID] = a
	}
	return r
}

func (r *fakeAdditionalRepo) Create(_ context.Context, a *entity.Additional) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	r.additionals[a.ID] = a
	return nil
}

func (r *fakeAdditionalRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Additional, error) {
	return r.additionals[id], nil
}

func (r *fakeAdditionalRepo) GetByIDs(_ context.Context, ids []uuid.UUID) ([]entity.Additional, error) {
	out := make([]entity.Additional, 0, len(ids))
	seen := make(map[uuid.UUID]bool)
	for _, id := range ids {
		if a, ok := r.additionals[id]; ok && !seen[id] {
			out = append(out, *a)
			seen[id] = true
		}
	}
	return out, nil
}

func (r *fakeAdditionalRepo) Update(_ context.Context, a *entity.Additional) error {
	r.additionals[a.ID] = a
	return nil
}

func (r *fakeAdditionalRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.additionals, id)
	return nil
}

func (r *fakeAdditionalRepo) List(_ context.Context) ([]entity.Additional, error) {
	return nil, nil
}

func (r *fakeAdditionalRepo) ListByCategory(_ context.Context, _ uuid.UUID) ([]entity.Additional, error) {
	return nil, nil
}

type fakePaymentRepo struct {
	methods map[uuid.UUID]*entity.PaymentMethod
}

func newFakePaymentRepo(methods ...*entity.PaymentMethod) *fakePaymentRepo {
	r := &fakePaymentRepo{methods: make(map[uuid.UUID]*entity.PaymentMethod)}
	for _, m := range methods {
		if m.ID == uuid.Nil {
			m.ID = uuid.New()
		}
		r.methods[m.ID] = m
	}
	return r
}

func (r *fakePaymentRepo) Create(_ context.Context, m *entity.PaymentMethod) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	r.methods[m.ID] = m
	return nil
}

func (r *fakePaymentRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.PaymentMethod, error) {
	return r.methods[id], nil
}

func (r *fakePaymentRepo) GetByName(_ context.Context, name string) (*entity.PaymentMethod, error) {
	for _, m := range r.methods {
		if m.Name == name {
			return m, nil
		}
	}
	return nil, nil
}

func (r *fakePaymentRepo) Update(_ context.Context, m *entity.PaymentMethod) error {
	r.methods[m.ID] = m
	return nil
}

func (r *fakePaymentRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.methods, id)
	return nil
}

func (r *fakePaymentRepo) List(_ context.Context) ([]entity.PaymentMethod, error) {
	out := make([]entity.PaymentMethod, 0, len(r.methods))
	for _, m := range r.methods {
		out = append(out, *m)
	}
	return out, nil
}

func (r *fakePaymentRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.methods)), nil
}

func cents(v int64) *int64 { return &v }

func newTestSaleService(products *fakeProductRepo, additionals *fakeAdditionalRepo, payments *fakePaymentRepo) (*SaleService, *fakeSaleRepo) {
	saleRepo := newFakeSaleRepo()
	return NewSaleService(saleRepo, products, additionals, payments), saleRepo
}

func TestCreateSaleComputesTotalFromSnapshots(t *testing.T) {
	burger := &entity.Product{ID: uuid.New(), Name: "X-Burger", PriceCents: cents(2500), Stock: -1}
	bacon := &entity.Additional{ID: uuid.New(), Name: "Bacon", PriceCents: 300}
	cash := &entity.PaymentMethod{ID: uuid.New(), Name: "Dinheiro"}

	svc, _ := newTestSaleService(
		newFakeProductRepo(burger),
		newFakeAdditionalRepo(bacon),
		newFakePaymentRepo(cash),
	)

	sale, err := svc.CreateSale(context.Background(), &CreateSaleInput{
		UserID:          uuid.New(),
		PaymentMethodID: cash.ID,
		Items: []SaleItemInput{
			{
				ProductID: burger.ID,
				Quantity:  2,
				Additionals: []SaleAdditionalInput{
					{AdditionalID: bacon.ID, Quantity: 2},
				},
			},
		},
	})
	if err != nil {
		t.Fatalf("CreateSale: %v", err)
	}

	// 2 x 25.00 + 2 x 3.00
	if sale.TotalCents != 5600 {
		t.Errorf("TotalCents = %d, want 5600", sale.TotalCents)
	}
}

func TestCreateSaleVariablePriceRequiresUnitPrice(t *testing.T) {
	acai := &entity.Product{ID: uuid.New(), Name: "Açaí por peso", VariablePrice: true, Stock: -1}
	cash := &entity.PaymentMethod{ID: uuid.New(), Name: "Dinheiro"}

	svc, _ := newTestSaleService(
		newFakeProductRepo(acai),
		newFakeAdditionalRepo(),
		newFakePaymentRepo(cash),
	)

	_, err := svc.CreateSale(context.Background(), &CreateSaleInput{
		UserID:          uuid.New(),
		PaymentMethodID: cash.ID,
		Items:           []SaleItemInput{{ProductID: acai.ID, Quantity: 1}},
	})
	if err == nil {
		t.Fatal("CreateSale without unit price for variable-price product should fail")
	}

	price := 17.35
	sale, err := svc.CreateSale(context.Background(), &CreateSaleInput{
		UserID:          uuid.New(),
		PaymentMethodID: cash.ID,
		Items:           []SaleItemInput{{ProductID: acai.ID, Quantity: 1, UnitPrice: &price}},
	})
	if err != nil {
		t.Fatalf("CreateSale with unit price: %v", err)
	}
	if sale.TotalCents != 1735 {
		t.Errorf("TotalCents = %d, want 1735", sale.TotalCents)
	}
}

func TestCreateSaleRejectsSuspendedProduct(t *testing.T) {
	suspended := &entity.Product{ID: uuid.New(), Name: "Fora do cardápio", PriceCents: cents(1000), Suspended: true, Stock: -1}
	cash := &entity.PaymentMethod{ID: uuid.New(), Name: "Dinheiro"}

	svc, _ := newTestSaleService(
		newFakeProductRepo(suspended),
		newFakeAdditionalRepo(),
		newFakePaymentRepo(cash),
	)

	_, err := svc.CreateSale(context.Background(), &CreateSaleInput{
		UserID:          uuid.New(),
		PaymentMethodID: cash.ID,
		Items:           []SaleItemInput{{ProductID: suspended.ID, Quantity: 1}},
	})
	if err == nil {
		t.Fatal("CreateSale with suspended product should fail")
	}
}

func TestCreateSaleDecrementsTrackedStockOnly(t *testing.T) {
	tracked := &entity.Product{ID: uuid.New(), Name: "Refrigerante", PriceCents: cents(600), Stock: 10}
	untracked := &entity.Product{ID: uuid.New(), Name: "X-Burger", PriceCents: cents(2500), Stock: -1}
	cash := &entity.PaymentMethod{ID: uuid.New(), Name: "Dinheiro"}

	products := newFakeProductRepo(tracked, untracked)
	svc, _ := newTestSaleService(products, newFakeAdditionalRepo(), newFakePaymentRepo(cash))

	_, err := svc.CreateSale(context.Background(), &CreateSaleInput{
		UserID:          uuid.New(),
		PaymentMethodID: cash.ID,
		Items: []SaleItemInput{
			{ProductID: tracked.ID, Quantity: 3},
			{ProductID: untracked.ID, Quantity: 5},
		},
	})
	if err != nil {
		t.Fatalf("CreateSale: %v", err)
	}

	if got := products.products[tracked.ID].Stock; got != 7 {
		t.Errorf("tracked stock = %d, want 7", got)
	}
	if got := products.products[untracked.ID].Stock; got != -1 {
		t.Errorf("untracked stock = %d, want -1", got)
	}
}

func TestCreateSaleInsufficientStock(t *testing.T) {
	scarce := &entity.Product{ID: uuid.New(), Name: "Última unidade", PriceCents: cents(900), Stock: 1}
	cash := &entity.PaymentMethod{ID: uuid.New(), Name: "Dinheiro"}

	products := newFakeProductRepo(scarce)
	svc, saleRepo := newTestSaleService(products, newFakeAdditionalRepo(), newFakePaymentRepo(cash))

	_, err := svc.CreateSale(context.Background(), &CreateSaleInput{
		UserID:          uuid.New(),
		PaymentMethodID: cash.ID,
		Items:           []SaleItemInput{{ProductID: scarce.ID, Quantity: 2}},
	})
	if err == nil {
		t.Fatal("CreateSale beyond stock should fail")
	}
	if got := products.products[scarce.ID].Stock; got != 1 {
		t.Errorf("stock after failed checkout = %d, want 1", got)
	}
	if len(saleRepo.sales) != 0 {
		t.Errorf("sales persisted after failed checkout = %d, want 0", len(saleRepo.sales))
	}
}

func TestUpdateSaleAdjustsStockDifference(t *testing.T) {
	soda := &entity.Product{ID: uuid.New(), Name: "Refrigerante", PriceCents: cents(600), Stock: 5}
	cash := &entity.PaymentMethod{ID: uuid.New(), Name: "Dinheiro"}
	pix := &entity.PaymentMethod{ID: uuid.New(), Name: "Pix"}

	products := newFakeProductRepo(soda)
	svc, _ := newTestSaleService(products, newFakeAdditionalRepo(), newFakePaymentRepo(cash, pix))

	sale, err := svc.CreateSale(context.Background(), &CreateSaleInput{
		UserID:          uuid.New(),
		PaymentMethodID: cash.ID,
		Items:           []SaleItemInput{{ProductID: soda.ID, Quantity: 3}},
	})
	if err != nil {
		t.Fatalf("CreateSale: %v", err)
	}
	if got := products.products[soda.ID].Stock; got != 2 {
		t.Fatalf("stock after checkout = %d, want 2", got)
	}

	// Editing down to 1 unit frees 2 and switches the payment method.
	updated, err := svc.UpdateSale(context.Background(), &UpdateSaleInput{
		ID:              sale.ID,
		PaymentMethodID: pix.ID,
		Items:           []SaleItemInput{{ProductID: soda.ID, Quantity: 1}},
	})
	if err != nil {
		t.Fatalf("UpdateSale: %v", err)
	}

	if got := products.products[soda.ID].Stock; got != 4 {
		t.Errorf("stock after edit = %d, want 4", got)
	}
	if updated.TotalCents != 600 {
		t.Errorf("TotalCents after edit = %d, want 600", updated.TotalCents)
	}
	if updated.PaymentMethodID != pix.ID {
		t.Errorf("payment method not updated")
	}
}

func TestUpdateSalePersistFailureLeavesStockUnchanged(t *testing.T) {
	soda := &entity.Product{ID: uuid.New(), Name: "Refrigerante", PriceCents: cents(600), Stock: 5}
	cash := &entity.PaymentMethod{ID: uuid.New(), Name: "Dinheiro"}

	products := newFakeProductRepo(soda)
	svc, saleRepo := newTestSaleService(products, newFakeAdditionalRepo(), newFakePaymentRepo(cash))

	sale, err := svc.CreateSale(context.Background(), &CreateSaleInput{
		UserID:          uuid.New(),
		PaymentMethodID: cash.ID,
		Items:           []SaleItemInput{{ProductID: soda.ID, Quantity: 3}},
	})
	if err != nil {
		t.Fatalf("CreateSale: %v", err)
	}
	if got := products.products[soda.ID].Stock; got != 2 {
		t.Fatalf("stock after checkout = %d, want 2", got)
	}

	// The stored sale still holds 3 units, so a failed persist must leave
	// stock where the checkout put it.
	saleRepo.replaceErr = errors.New("connection reset")
	_, err = svc.UpdateSale(context.Background(), &UpdateSaleInput{
		ID:              sale.ID,
		PaymentMethodID: cash.ID,
		Items:           []SaleItemInput{{ProductID: soda.ID, Quantity: 1}},
	})
	if err == nil {
		t.Fatal("UpdateSale with failing persist should fail")
	}

	if got := products.products[soda.ID].Stock; got != 2 {
		t.Errorf("stock after failed edit = %d, want 2", got)
	}
}

func TestDeleteSaleRestoresStock(t *testing.T) {
	soda := &entity.Product{ID: uuid.New(), Name: "Refrigerante", PriceCents: cents(600), Stock: 5}
	cash := &entity.PaymentMethod{ID: uuid.New(), Name: "Dinheiro"}

	products := newFakeProductRepo(soda)
	svc, saleRepo := newTestSaleService(products, newFakeAdditionalRepo(), newFakePaymentRepo(cash))

	sale, err := svc.CreateSale(context.Background(), &CreateSaleInput{
		UserID:          uuid.New(),
		PaymentMethodID: cash.ID,
		Items:           []SaleItemInput{{ProductID: soda.ID, Quantity: 2}},
	})
	if err != nil {
		t.Fatalf("CreateSale: %v", err)
	}

	if err := svc.DeleteSale(context.Background(), sale.ID); err != nil {
		t.Fatalf("DeleteSale: %v", err)
	}
	if got := products.products[soda.ID].Stock; got != 5 {
		t.Errorf("stock after delete = %d, want 5", got)
	}
	if len(saleRepo.sales) != 0 {
		t.Errorf("sale still present after delete")
	}
}

func TestDateRange(t *testing.T) {
	loc := time.UTC

	from, to, err := DateRange("2025-03-01", "2025-03-05", loc)
	if err != nil {
		t.Fatalf("DateRange: %v", err)
	}
	if from == nil || !from.Equal(time.Date(2025, 3, 1, 0, 0, 0, 0, loc)) {
		t.Errorf("from = %v, want 2025-03-01 00:00", from)
	}
	// End is exclusive: the day after the requested end date.
	if to == nil || !to.Equal(time.Date(2025, 3, 6, 0, 0, 0, 0, loc)) {
		t.Errorf("to = %v, want 2025-03-06 00:00", to)
	}

	from, to, err = DateRange("", "", loc)
	if err != nil {
		t.Fatalf("DateRange empty: %v", err)
	}
	if from != nil || to != nil {
		t.Errorf("empty range should produce nil bounds")
	}

	if _, _, err := DateRange("03/01/2025", "", loc); err == nil {
		t.Error("DateRange with malformed date should fail")
	}
}
