//
// Tencent is pleased to support the open source community by making trpc-evalstats-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-evalstats-go is licensed under the Apache License Version 2.0.
//
//

// Package inmemory provides an in-memory report manager implementation.
package inmemory

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"

	"trpc.group/trpc-go/trpc-evalstats-go/report"
)

// manager implements report.Manager backed by in-memory storage.
// Each API returns deep-copied objects to avoid accidental mutation.
type manager struct {
	mu      sync.RWMutex
	reports map[string]map[string][]*report.Report // appName -> evalSetID -> reports.
}

// New creates an in-memory report manager.
func New() report.Manager {
	return &manager{
		reports: make(map[string]map[string][]*report.Report),
	}
}

// List returns the names of all reports stored under the given app name and eval set ID.
func (m *manager) List(_ context.Context, appName, evalSetID string) ([]string, error) {
	if appName == "" {
		return nil, errors.New("empty app name")
	}
	if evalSetID == "" {
		return nil, errors.New("empty eval set id")
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	stored := m.reports[appName][evalSetID]
	names := make([]string, 0, len(stored))
	for _, r := range stored {
		if r != nil {
			names = append(names, r.Name)
		}
	}
	return names, nil
}

// Save stores the given reports under the given app name and eval set ID,
// replacing any previous set.
func (m *manager) Save(_ context.Context, appName, evalSetID string, reports []*report.Report) error {
	if appName == "" {
		return errors.New("empty app name")
	}
	if evalSetID == "" {
		return errors.New("empty eval set id")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.reports[appName] == nil {
		m.reports[appName] = make(map[string][]*report.Report)
	}
	cloned := make([]*report.Report, 0, len(reports))
	for _, r := range reports {
		cloned = append(cloned, r.Clone())
	}
	m.reports[appName][evalSetID] = cloned
	return nil
}

// Get returns the report with the given name under the given app name and eval set ID.
func (m *manager) Get(_ context.Context, appName, evalSetID, name string) (*report.Report, error) {
	if appName == "" {
		return nil, errors.New("empty app name")
	}
	if evalSetID == "" {
		return nil, errors.New("empty eval set id")
	}
	if name == "" {
		return nil, errors.New("empty report name")
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, r := range m.reports[appName][evalSetID] {
		if r != nil && r.Name == name {
			return r.Clone(), nil
		}
	}
	return nil, fmt.Errorf("report %s.%s.%s not found: %w", appName, evalSetID, name, os.ErrNotExist)
}

// Delete removes the report with the given name under the given app name and eval set ID.
func (m *manager) Delete(_ context.Context, appName, evalSetID, name string) error {
	if appName == "" {
		return errors.New("empty app name")
	}
	if evalSetID == "" {
		return errors.New("empty eval set id")
	}
	if name == "" {
		return errors.New("empty report name")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	stored := m.reports[appName][evalSetID]
	for i, r := range stored {
		if r != nil && r.Name == name {
			m.reports[appName][evalSetID] = append(stored[:i], stored[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("report %s.%s.%s not found: %w", appName, evalSetID, name, os.ErrNotExist)
}
