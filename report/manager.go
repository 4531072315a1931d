//
// Tencent is pleased to support the open source community by making trpc-evalstats-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-evalstats-go is licensed under the Apache License Version 2.0.
//
//

package report

import (
	"context"
)

// Manager defines the interface for managing stored evaluation
// reports. Reports are grouped by app name and eval set ID and
// addressed by their report name within a group.
type Manager interface {
	// List returns the names of all reports stored under the given app name and eval set ID.
	List(ctx context.Context, appName, evalSetID string) ([]string, error)
	// Save stores the given reports under the given app name and eval set ID, replacing any previous set.
	Save(ctx context.Context, appName, evalSetID string, reports []*Report) error
	// Get returns the report with the given name under the given app name and eval set ID.
	Get(ctx context.Context, appName, evalSetID, name string) (*Report, error)
	// Delete removes the report with the given name under the given app name and eval set ID.
	Delete(ctx context.Context, appName, evalSetID, name string) error
}
