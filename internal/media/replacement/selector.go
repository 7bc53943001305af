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

package replacement

import (
	"errors"
	"strings"

	"github.com/wso2/media-metadata-service/internal/media/model"
)

// ErrNilCandidates marks a caller bug: a nil candidate list, as opposed to an
// empty one, which is a legitimate "no candidates" case.
var ErrNilCandidates = errors.New("candidate media list must not be nil")

const activeLiteral = "true"

type MediaReplacementSelectorInterface interface {
	SelectBest(candidates []model.CandidateMedia) (*model.CandidateMedia, error)
	IsReplacement(providerTag string) bool
}

// MediaReplacementSelector picks the canonical record among duplicate copies
// of the same logical media item. The provider allow-list is immutable after
// construction.
type MediaReplacementSelector struct {
	allowedProviders []string
}

// NewMediaReplacementSelector builds a selector from the comma-separated
// provider allow-list.
func NewMediaReplacementSelector(providerAllowList string) MediaReplacementSelectorInterface {

	var allowed []string
	for _, tag := range strings.Split(providerAllowList, ",") {
		tag = strings.TrimSpace(tag)
		if tag != "" {
			allowed = append(allowed, tag)
		}
	}
	return &MediaReplacementSelector{allowedProviders: allowed}
}

// SelectBest returns the most recently updated active candidate. Inactive
// copies are never selected even when strictly newer; only the literal string
// "true", compared case-insensitively, counts as active. Timestamp ties keep
// the first-seen candidate. An empty filtered set returns nil.
func (s *MediaReplacementSelector) SelectBest(candidates []model.CandidateMedia) (*model.CandidateMedia, error) {

	if candidates == nil {
		return nil, ErrNilCandidates
	}

	var best *model.CandidateMedia
	for i := range candidates {
		if !strings.EqualFold(candidates[i].Active, activeLiteral) {
			continue
		}
		if best == nil || candidates[i].LastUpdated.After(best.LastUpdated) {
			best = &candidates[i]
		}
	}

	if best == nil {
		return nil, nil
	}
	selected := *best
	return &selected, nil
}

// IsReplacement reports whether an incoming message with the given domain
// provider tag replaces an existing record rather than being added as new.
// A missing tag always yields false.
func (s *MediaReplacementSelector) IsReplacement(providerTag string) bool {

	if providerTag == "" {
		return false
	}
	for _, allowed := range s.allowedProviders {
		if strings.EqualFold(providerTag, allowed) {
			return true
		}
	}
	return false
}
