/*
 * Copyright (c) 2025, WSO2 LLC. (http://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

package model

import (
	"regexp"
	"time"
)

// RoomAssociation links a media item to a room. IsHero marks the media as the
// room's featured image. Identity is RoomID.
type RoomAssociation struct {
	RoomID int  `json:"room_id" bson:"room_id"`
	IsHero bool `json:"is_hero" bson:"is_hero"`
}

// ReconciliationResult holds the four independent change-sets computed when a
// room-to-media mapping is updated. It is never persisted; the catalog store
// applies it through stored procedures.
type ReconciliationResult struct {
	AddCatalog      []RoomAssociation `json:"add_catalog"`
	RemoveCatalog   []RoomAssociation `json:"remove_catalog"`
	AddParagraph    []RoomAssociation `json:"add_paragraph"`
	RemoveParagraph []RoomAssociation `json:"remove_paragraph"`
}

// IsEmpty reports whether the reconciliation produced no changes.
func (r ReconciliationResult) IsEmpty() bool {
	return len(r.AddCatalog) == 0 && len(r.RemoveCatalog) == 0 &&
		len(r.AddParagraph) == 0 && len(r.RemoveParagraph) == 0
}

// ActivityLogEntry is one append-only activity log row, produced by upstream
// pipeline stages and read-only here.
type ActivityLogEntry struct {
	Timestamp     time.Time `json:"timestamp" bson:"timestamp"`
	MediaFileName string    `json:"media_file_name" bson:"media_file_name"`
	ActivityType  string    `json:"activity_type" bson:"activity_type"`
	MediaType     string    `json:"media_type" bson:"media_type"`
}

// ActivityRule maps activity log entries to a lifecycle status. Rules are
// compiled once at startup and evaluated in list order; the first match wins.
type ActivityRule struct {
	ActivityType *regexp.Regexp
	MediaType    *regexp.Regexp
	Status       string
}

// Matches reports whether the rule covers the given entry.
func (r ActivityRule) Matches(entry ActivityLogEntry) bool {
	return r.ActivityType.MatchString(entry.ActivityType) &&
		r.MediaType.MatchString(entry.MediaType)
}

// ResolvedStatus is the outcome of resolving an activity log partition. Time
// is zero when Status is NOT_FOUND.
type ResolvedStatus struct {
	Status string    `json:"status"`
	Time   time.Time `json:"time,omitempty"`
}

// CandidateMedia is one physical copy of a logical media item. Several copies
// may exist for the same filename/provider key; the replacement selector picks
// the authoritative one.
type CandidateMedia struct {
	ID          string    `json:"id" bson:"id"`
	Active      string    `json:"active" bson:"active"`
	LastUpdated time.Time `json:"last_updated" bson:"last_updated"`
	DomainID    string    `json:"domain_id,omitempty" bson:"domain_id,omitempty"`
}

// Derivative is a resized or transcoded variant of a source image.
type Derivative struct {
	Type     string `json:"type" bson:"type"`
	Category string `json:"category,omitempty" bson:"category,omitempty"`
	FileSize int64  `json:"file_size" bson:"file_size"`
	Location string `json:"location,omitempty" bson:"location,omitempty"`
}

// Comment is a free-text note attached to a media document.
type Comment struct {
	Note      string    `json:"note" bson:"note"`
	Timestamp time.Time `json:"timestamp" bson:"timestamp"`
}

// RelationalMediaRow is the catalog store's view of a media item, already
// scanned out of the stored-procedure result set.
type RelationalMediaRow struct {
	MediaID          int
	FileName         string
	Category         string
	Width            int
	Height           int
	FileSizeKB       int
	DerivativeSizeKB int
	StatusCode       string
}

// Active derives the boolean active flag from the single-character catalog
// status code.
func (r RelationalMediaRow) Active() bool {
	return r.StatusCode == "A"
}

// DocumentMediaRow is the document store's view of a media item.
type DocumentMediaRow struct {
	GUID           string            `json:"guid" bson:"guid"`
	Domain         string            `json:"domain" bson:"domain"`
	DomainID       string            `json:"domain_id" bson:"domain_id"`
	CatalogMediaID int               `json:"catalog_media_id,omitempty" bson:"catalog_media_id,omitempty"`
	FileName       string            `json:"file_name" bson:"file_name"`
	Active         string            `json:"active" bson:"active"`
	Provider       string            `json:"provider,omitempty" bson:"provider,omitempty"`
	LastUpdated    time.Time         `json:"last_updated" bson:"last_updated"`
	DomainFields   map[string]string `json:"domain_fields,omitempty" bson:"domain_fields,omitempty"`
	Derivatives    []Derivative      `json:"derivatives,omitempty" bson:"derivatives,omitempty"`
	Comments       []Comment         `json:"comments,omitempty" bson:"comments,omitempty"`
}

// Domain field names surfaced by upstream pipelines.
const (
	DomainFieldSubcategoryID = "subcategoryId"
	DomainFieldPropertyHero  = "propertyHero"
)

// AggregatedMediaView is the externally visible merged record: catalog fields
// joined with document fields. Request-scoped, never persisted.
type AggregatedMediaView struct {
	MediaID      int               `json:"media_id,omitempty"`
	GUID         string            `json:"guid,omitempty"`
	FileName     string            `json:"file_name"`
	Category     string            `json:"category,omitempty"`
	Width        int               `json:"width,omitempty"`
	Height       int               `json:"height,omitempty"`
	FileSize     int64             `json:"file_size,omitempty"`
	Active       bool              `json:"active"`
	DomainFields map[string]string `json:"domain_fields,omitempty"`
	Derivatives  []Derivative      `json:"derivatives,omitempty"`
	Comments     []Comment         `json:"comments,omitempty"`
}
