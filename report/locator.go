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
	"path/filepath"
)

// defaultReportsFileSuffix is the default suffix for report files.
const defaultReportsFileSuffix = ".reports.json"

// Locator defines the interface for locating report files.
type Locator interface {
	// Build builds the path of a report file identified by the given app name and eval set ID.
	Build(baseDir, appName, evalSetID string) string
}

// locator is the default Locator implementation.
type locator struct{}

// Build builds the path of a report file.
func (l *locator) Build(baseDir, appName, evalSetID string) string {
	return filepath.Join(baseDir, appName, evalSetID+defaultReportsFileSuffix)
}
