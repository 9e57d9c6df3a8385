package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/pdvcaixa/caixa-api/internal/domain/entity"
)

func newTestCategoryService(categories *fakeCategoryRepo, products *fakeProductRepo) *CategoryService {
	return NewCategoryService(categories, products)
}

func TestCategoryProductAssignAndRemove(t *testing.T) {
	drinks := entity.Category{ID: uuid.New(), Name: "Bebidas"}
	categories := &fakeCategoryRepo{categories: []entity.Category{drinks}}

	soda := &entity.Product{ID: uuid.New(), Name: "Refrigerante", PriceCents: cents(600), Stock: -1}
	products := newFakeProductRepo(soda)
	svc := newTestCategoryService(categories, products)

	assigned, err := svc.AssignProduct(context.Background(), drinks.ID, soda.ID)
	if err != nil {
		t.Fatalf("AssignProduct: %v", err)
	}
	if assigned.Category == nil || *assigned.Category != "Bebidas" {
		t.Fatalf("Category = %v, want Bebidas", assigned.Category)
	}

	listed, err := svc.ListCategoryProducts(context.Background(), drinks.ID)
	if err != nil {
		t.Fatalf("ListCategoryProducts: %v", err)
	}
	if len(listed) != 1 || listed[0].ID != soda.ID {
		t.Fatalf("listed = %+v, want the assigned product", listed)
	}

	if err := svc.RemoveProduct(context.Background(), drinks.ID, soda.ID); err != nil {
		t.Fatalf("RemoveProduct: %v", err)
	}
	if products.products[soda.ID].Category != nil {
		t.Errorf("Category after removal = %v, want nil", products.products[soda.ID].Category)
	}

	listed, err = svc.ListCategoryProducts(context.Background(), drinks.ID)
	if err != nil {
		t.Fatalf("ListCategoryProducts after removal: %v", err)
	}
	if len(listed) != 0 {
		t.Errorf("listed after removal = %+v, want empty", listed)
	}
}

func TestAssignProductReplacesPreviousCategory(t *testing.T) {
	drinks := entity.Category{ID: uuid.New(), Name: "Bebidas"}
	sweets := entity.Category{ID: uuid.New(), Name: "Doces"}
	categories := &fakeCategoryRepo{categories: []entity.Category{drinks, sweets}}

	old := "Doces"
	pudding := &entity.Product{ID: uuid.New(), Name: "Pudim", PriceCents: cents(1200), Category: &old, Stock: -1}
	products := newFakeProductRepo(pudding)
	svc := newTestCategoryService(categories, products)

	assigned, err := svc.AssignProduct(context.Background(), drinks.ID, pudding.ID)
	if err != nil {
		t.Fatalf("AssignProduct: %v", err)
	}
	if assigned.Category == nil || *assigned.Category != "Bebidas" {
		t.Errorf("Category = %v, want Bebidas", assigned.Category)
	}
}

func TestRemoveProductNotInCategory(t *testing.T) {
	drinks := entity.Category{ID: uuid.New(), Name: "Bebidas"}
	categories := &fakeCategoryRepo{categories: []entity.Category{drinks}}

	burger := &entity.Product{ID: uuid.New(), Name: "X-Burger", PriceCents: cents(2500), Stock: -1}
	products := newFakeProductRepo(burger)
	svc := newTestCategoryService(categories, products)

	if err := svc.RemoveProduct(context.Background(), drinks.ID, burger.ID); err == nil {
		t.Error("removing a product that is not in the category should fail")
	}

	if _, err := svc.AssignProduct(context.Background(), uuid.New(), burger.ID); err == nil {
		t.Error("assigning to an unknown category should fail")
	}
	if _, err := svc.AssignProduct(context.Background(), drinks.ID, uuid.New()); err == nil {
		t.Error("assigning an unknown product should fail")
	}
}
