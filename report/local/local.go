//
// Tencent is pleased to support the open source community by making trpc-evalstats-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-evalstats-go is licensed under the Apache License Version 2.0.
//
//

// Package local provides a filesystem-backed report manager implementation.
package local

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"trpc.group/trpc-go/trpc-evalstats-go/report"
)

type manager struct {
	mu      sync.RWMutex
	baseDir string
	loc     report.Locator
}

// New creates a filesystem-backed report manager.
func New(opts ...report.Option) report.Manager {
	options := report.NewOptions(opts...)
	return &manager{
		baseDir: options.BaseDir,
		loc:     options.Locator,
	}
}

func (m *manager) reportPath(appName, evalSetID string) string {
	return m.loc.Build(m.baseDir, appName, evalSetID)
}

// List returns the names of all reports stored under the given app name and eval set ID.
func (m *manager) List(_ context.Context, appName, evalSetID string) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	reports, err := m.load(appName, evalSetID)
	if errors.Is(err, os.ErrNotExist) {
		return []string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load reports %s for app %s: %w", evalSetID, appName, err)
	}
	names := make([]string, 0, len(reports))
	for _, r := range reports {
		if r != nil {
			names = append(names, r.Name)
		}
	}
	return names, nil
}

// Save stores the given reports under the given app name and eval set ID,
// replacing any previous set.
func (m *manager) Save(_ context.Context, appName, evalSetID string, reports []*report.Report) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.store(appName, evalSetID, reports)
}

// Get returns the report with the given name under the given app name and eval set ID.
func (m *manager) Get(_ context.Context, appName, evalSetID, name string) (*report.Report, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	reports, err := m.load(appName, evalSetID)
	if err != nil {
		return nil, fmt.Errorf("load reports %s for app %s: %w", evalSetID, appName, err)
	}
	for _, r := range reports {
		if r != nil && r.Name == name {
			return r, nil
		}
	}
	return nil, fmt.Errorf("%w: report %s", os.ErrNotExist, name)
}

// Delete removes the report with the given name under the given app name and eval set ID.
func (m *manager) Delete(_ context.Context, appName, evalSetID, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	reports, err := m.load(appName, evalSetID)
	if err != nil {
		return fmt.Errorf("load reports %s for app %s: %w", evalSetID, appName, err)
	}
	kept := reports[:0]
	found := false
	for _, r := range reports {
		if r != nil && r.Name == name {
			found = true
			continue
		}
		kept = append(kept, r)
	}
	if !found {
		return fmt.Errorf("%w: report %s", os.ErrNotExist, name)
	}
	return m.store(appName, evalSetID, kept)
}

func (m *manager) load(appName, evalSetID string) ([]*report.Report, error) {
	path := m.reportPath(appName, evalSetID)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var reports []*report.Report
	if err := json.Unmarshal(data, &reports); err != nil {
		return nil, err
	}
	if reports == nil {
		reports = []*report.Report{}
	}
	return reports, nil
}

func (m *manager) store(appName, evalSetID string, reports []*report.Report) error {
	path := m.reportPath(appName, evalSetID)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir all %s: %w", filepath.Dir(path), err)
	}
	tmp := path + ".tmp"
	file, err := os.OpenFile(tmp, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open file %s: %w", tmp, err)
	}
	if reports == nil {
		reports = []*report.Report{}
	}
	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(reports); err != nil {
		file.Close()
		return fmt.Errorf("encode reports: %w", err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("close file %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("rename %s to %s: %w", tmp, path, err)
	}
	return nil
}
