package services

import (
	"context"
	"errors"
	"testing"

	"aeromaint/opsdesk/internal/constants"
	"aeromaint/opsdesk/internal/db/repositories"
	"aeromaint/opsdesk/internal/models/dtos"
)

func TestInventoryService_UpsertPart_Validation(t *testing.T) {
	gdb := setupTestDB(t)
	svc := NewInventoryService(repositories.NewInventoryRepository(gdb), testMetrics)
	ctx := context.Background()

	cases := []dtos.UpsertPartRequest{
		{Name: "Gimbal", Quantity: 1, Minimum: 1},                     // missing part id
		{PartID: "P010", Quantity: 1, Minimum: 1},                     // missing name
		{PartID: "P010", Name: "Gimbal", Quantity: -1, Minimum: 1},    // negative qty
		{PartID: "P010", Name: "Gimbal", Quantity: 1, Minimum: -1},    // negative min
	}
	for i, req := range cases {
		if _, err := svc.UpsertPart(ctx, req); !errors.Is(err, constants.ErrValidation) {
			t.Errorf("case %d: expected ErrValidation, got %v", i, err)
		}
	}
}

func TestInventoryService_UpsertPart_OverwritesByPartID(t *testing.T) {
	gdb := setupTestDB(t)
	svc := NewInventoryService(repositories.NewInventoryRepository(gdb), testMetrics)
	ctx := context.Background()

	if _, err := svc.UpsertPart(ctx, dtos.UpsertPartRequest{PartID: "P010", Name: "Gimbal", Quantity: 2, Minimum: 3}); err != nil {
		t.Fatalf("First upsert failed: %v", err)
	}
	if _, err := svc.UpsertPart(ctx, dtos.UpsertPartRequest{PartID: "P010", Name: "Gimbal", Quantity: 8, Minimum: 3}); err != nil {
		t.Fatalf("Second upsert failed: %v", err)
	}

	parts, err := svc.ListParts(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(parts) != 1 {
		t.Fatalf("Expected 1 part after overwrite, got %d", len(parts))
	}
	if parts[0].Quantity != 8 {
		t.Errorf("Expected quantity 8, got %d", parts[0].Quantity)
	}
}

func TestInventoryService_UsePart_NeverNegative(t *testing.T) {
	gdb := setupTestDB(t)
	svc := NewInventoryService(repositories.NewInventoryRepository(gdb), testMetrics)
	ctx := context.Background()

	if _, err := svc.UpsertPart(ctx, dtos.UpsertPartRequest{PartID: "P001", Name: "Propeller", Quantity: 3, Minimum: 1}); err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}

	_, err := svc.UsePart(ctx, "houcine", dtos.UsePartRequest{Name: "Propeller", Quantity: 5})
	if !errors.Is(err, constants.ErrInsufficientStock) {
		t.Fatalf("Expected ErrInsufficientStock, got %v", err)
	}

	// Failed use leaves stock untouched.
	parts, _ := svc.ListParts(ctx)
	if parts[0].Quantity != 3 {
		t.Errorf("Expected quantity unchanged at 3, got %d", parts[0].Quantity)
	}

	part, err := svc.UsePart(ctx, "houcine", dtos.UsePartRequest{Name: "Propeller", Quantity: 3})
	if err != nil {
		t.Fatalf("Use failed: %v", err)
	}
	if part.Quantity != 0 {
		t.Errorf("Expected quantity 0, got %d", part.Quantity)
	}

	if _, err := svc.UsePart(ctx, "houcine", dtos.UsePartRequest{Name: "Propeller", Quantity: 1}); !errors.Is(err, constants.ErrInsufficientStock) {
		t.Errorf("Expected ErrInsufficientStock at zero stock, got %v", err)
	}
}

func TestInventoryService_UsePart_Validation(t *testing.T) {
	gdb := setupTestDB(t)
	svc := NewInventoryService(repositories.NewInventoryRepository(gdb), testMetrics)
	ctx := context.Background()

	if _, err := svc.UsePart(ctx, "houcine", dtos.UsePartRequest{Name: "Propeller", Quantity: 0}); !errors.Is(err, constants.ErrValidation) {
		t.Errorf("Expected ErrValidation for zero qty, got %v", err)
	}
	if _, err := svc.UsePart(ctx, "houcine", dtos.UsePartRequest{Quantity: 1}); !errors.Is(err, constants.ErrValidation) {
		t.Errorf("Expected ErrValidation for missing name, got %v", err)
	}
	if _, err := svc.UsePart(ctx, "houcine", dtos.UsePartRequest{Name: "Ghost", Quantity: 1}); !errors.Is(err, constants.ErrNotFound) {
		t.Errorf("Expected ErrNotFound for unknown part, got %v", err)
	}
}

func TestInventoryService_UsePart_RecordsHistory(t *testing.T) {
	gdb := setupTestDB(t)
	svc := NewInventoryService(repositories.NewInventoryRepository(gdb), testMetrics)
	ctx := context.Background()

	if _, err := svc.UpsertPart(ctx, dtos.UpsertPartRequest{PartID: "P001", Name: "Propeller", Quantity: 10, Minimum: 5}); err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}
	if _, err := svc.UsePart(ctx, "houcine", dtos.UsePartRequest{Name: "Propeller", Quantity: 2, Note: "rotor swap"}); err != nil {
		t.Fatalf("Use failed: %v", err)
	}

	usage, err := svc.UsageHistory(ctx)
	if err != nil {
		t.Fatalf("UsageHistory failed: %v", err)
	}
	if len(usage) != 1 {
		t.Fatalf("Expected 1 usage row, got %d", len(usage))
	}
	if usage[0].PartID != "P001" || usage[0].QtyUsed != 2 || usage[0].User != "houcine" {
		t.Errorf("Unexpected usage row: %+v", usage[0])
	}
}

func TestInventoryService_LowStockReport(t *testing.T) {
	gdb := setupTestDB(t)
	svc := NewInventoryService(repositories.NewInventoryRepository(gdb), testMetrics)
	ctx := context.Background()

	low, err := svc.LowStockReport(ctx)
	if err != nil {
		t.Fatalf("LowStockReport failed: %v", err)
	}
	if len(low) != 0 {
		t.Errorf("Expected empty low-stock report, got %d", len(low))
	}

	if _, err := svc.UpsertPart(ctx, dtos.UpsertPartRequest{PartID: "P001", Name: "Propeller", Quantity: 10, Minimum: 5}); err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}
	if _, err := svc.UpsertPart(ctx, dtos.UpsertPartRequest{PartID: "P010", Name: "Gimbal", Quantity: 3, Minimum: 3}); err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}

	low, err = svc.LowStockReport(ctx)
	if err != nil {
		t.Fatalf("LowStockReport failed: %v", err)
	}
	if len(low) != 1 || low[0].PartID != "P010" {
		t.Fatalf("Expected only P010 at minimum, got %+v", low)
	}
	if !low[0].IsLowStock() {
		t.Errorf("Expected P010 to report low stock")
	}

	// Consuming the boundary part keeps it on the report.
	if _, err := svc.UsePart(ctx, "houcine", dtos.UsePartRequest{Name: "Gimbal", Quantity: 1}); err != nil {
		t.Fatalf("Use failed: %v", err)
	}
	low, _ = svc.LowStockReport(ctx)
	if len(low) != 1 {
		t.Errorf("Expected P010 still low after use, got %d rows", len(low))
	}
}
