// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"errors"
	"testing"

	"vitrine/internal/models"
)

func TestProductCreateListFilter(t *testing.T) {
	db := testDB(t)
	store := NewProductStore(db)
	t.Cleanup(func() { cleanProducts(t, db, "test-plain-mug", "test-star-mug", "test-hidden-mug") })

	plain, err := store.Create(&models.Product{
		Name: "Test Plain Mug", Slug: "test-plain-mug", PriceCents: 1200, Active: true,
	})
	if err != nil {
		t.Fatalf("create plain: %v", err)
	}
	star, err := store.Create(&models.Product{
		Name: "Test Star Mug", Slug: "test-star-mug", PriceCents: 1500, Featured: true, Active: true,
	})
	if err != nil {
		t.Fatalf("create star: %v", err)
	}
	if _, err := store.Create(&models.Product{
		Name: "Test Hidden Mug", Slug: "test-hidden-mug", PriceCents: 900, Active: false,
	}); err != nil {
		t.Fatalf("create hidden: %v", err)
	}

	// Featured filter returns only the starred product.
	featured := true
	items, err := store.List(models.ProductFilter{Featured: &featured})
	if err != nil {
		t.Fatalf("list featured: %v", err)
	}
	var sawStar, sawPlain bool
	for _, p := range items {
		if p.ID == star.ID {
			sawStar = true
		}
		if p.ID == plain.ID {
			sawPlain = true
		}
	}
	if !sawStar || sawPlain {
		t.Errorf("featured filter wrong: sawStar=%v sawPlain=%v", sawStar, sawPlain)
	}

	// Inactive products never appear in the public listing.
	all, err := store.List(models.ProductFilter{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	for _, p := range all {
		if p.Slug == "test-hidden-mug" {
			t.Error("inactive product in public listing")
		}
	}
}

func TestProductSlugConflict(t *testing.T) {
	db := testDB(t)
	store := NewProductStore(db)
	t.Cleanup(func() { cleanProducts(t, db, "test-dup-product") })

	p := models.Product{Name: "Test Dup", Slug: "test-dup-product", PriceCents: 100, Active: true}
	if _, err := store.Create(&p); err != nil {
		t.Fatalf("first create: %v", err)
	}
	if _, err := store.Create(&p); !errors.Is(err, ErrSlugTaken) {
		t.Errorf("duplicate slug: err = %v, want ErrSlugTaken", err)
	}
}

func TestProductUpdateAndNotFound(t *testing.T) {
	db := testDB(t)
	store := NewProductStore(db)
	t.Cleanup(func() { cleanProducts(t, db, "test-editable") })

	created, err := store.Create(&models.Product{
		Name: "Test Editable", Slug: "test-editable", PriceCents: 500, Active: true,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	created.PriceCents = 750
	if err := store.Update(created); err != nil {
		t.Fatalf("update: %v", err)
	}

	found, err := store.FindByID(created.ID)
	if err != nil || found == nil {
		t.Fatalf("find: %v, %+v", err, found)
	}
	if found.PriceCents != 750 {
		t.Errorf("price = %d, want 750", found.PriceCents)
	}

	if err := store.Delete(created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	// Updating a deleted product reports ErrNotFound.
	if err := store.Update(created); !errors.Is(err, ErrNotFound) {
		t.Errorf("update deleted: err = %v, want ErrNotFound", err)
	}

	// FindByID on a missing row is (nil, nil).
	missing, err := store.FindByID(created.ID)
	if err != nil {
		t.Errorf("find missing: %v", err)
	}
	if missing != nil {
		t.Errorf("find missing = %+v, want nil", missing)
	}
}
