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

package status

import (
	"fmt"
	"regexp"

	"github.com/wso2/media-metadata-service/internal/system/config"
	"github.com/wso2/media-metadata-service/internal/system/constants"
	errors2 "github.com/wso2/media-metadata-service/internal/system/errors"

	"github.com/wso2/media-metadata-service/internal/media/model"
)

type ActivityStatusResolverInterface interface {
	Resolve(entries []model.ActivityLogEntry) model.ResolvedStatus
	ResolveBatch(fileNames []string, entries []model.ActivityLogEntry) map[string]model.ResolvedStatus
}

// ActivityStatusResolver derives one lifecycle status from activity log rows
// using the compiled rule list. Rules are immutable after construction and the
// resolver is safe for concurrent use.
type ActivityStatusResolver struct {
	rules []model.ActivityRule
}

// NewActivityStatusResolver returns a resolver over the given compiled rules.
func NewActivityStatusResolver(rules []model.ActivityRule) ActivityStatusResolverInterface {
	return &ActivityStatusResolver{rules: rules}
}

// CompileRules compiles the configured rule list. List order is preserved; an
// empty media type pattern compiles to the wildcard.
func CompileRules(configs []config.ActivityRuleConfig) ([]model.ActivityRule, error) {

	rules := make([]model.ActivityRule, 0, len(configs))
	for _, rc := range configs {
		activityPattern, err := regexp.Compile(rc.ActivityTypePattern)
		if err != nil {
			return nil, errors2.NewServerError(errors2.ErrorMessage{
				Code:        errors2.ACTIVITY_RULE_COMPILE.Code,
				Message:     errors2.ACTIVITY_RULE_COMPILE.Message,
				Description: fmt.Sprintf("Invalid activity type pattern: %s", rc.ActivityTypePattern),
			}, err)
		}

		mediaPattern := rc.MediaTypePattern
		if mediaPattern == "" {
			mediaPattern = constants.WildcardPattern
		}
		mediaRegexp, err := regexp.Compile(mediaPattern)
		if err != nil {
			return nil, errors2.NewServerError(errors2.ErrorMessage{
				Code:        errors2.ACTIVITY_RULE_COMPILE.Code,
				Message:     errors2.ACTIVITY_RULE_COMPILE.Message,
				Description: fmt.Sprintf("Invalid media type pattern: %s", rc.MediaTypePattern),
			}, err)
		}

		rules = append(rules, model.ActivityRule{
			ActivityType: activityPattern,
			MediaType:    mediaRegexp,
			Status:       rc.Status,
		})
	}
	return rules, nil
}

// Resolve maps each entry to its first matching rule in configured order,
// discards unmatched entries, and returns the status of the latest matched
// entry. Timestamp ties resolve to the last-seen entry. Entries without a
// configured rule never influence the outcome, however recent.
func (r *ActivityStatusResolver) Resolve(entries []model.ActivityLogEntry) model.ResolvedStatus {

	resolved := model.ResolvedStatus{Status: constants.StatusNotFound}
	found := false

	for _, entry := range entries {
		rule, ok := r.firstMatch(entry)
		if !ok {
			continue
		}
		if !found || !entry.Timestamp.Before(resolved.Time) {
			resolved = model.ResolvedStatus{Status: rule.Status, Time: entry.Timestamp}
			found = true
		}
	}

	return resolved
}

// ResolveBatch partitions entries by media file name and resolves each
// partition independently. File names with no matching entries resolve to
// NOT_FOUND.
func (r *ActivityStatusResolver) ResolveBatch(fileNames []string, entries []model.ActivityLogEntry) map[string]model.ResolvedStatus {

	partitions := make(map[string][]model.ActivityLogEntry, len(fileNames))
	for _, entry := range entries {
		partitions[entry.MediaFileName] = append(partitions[entry.MediaFileName], entry)
	}

	results := make(map[string]model.ResolvedStatus, len(fileNames))
	for _, name := range fileNames {
		results[name] = r.Resolve(partitions[name])
	}
	return results
}

func (r *ActivityStatusResolver) firstMatch(entry model.ActivityLogEntry) (model.ActivityRule, bool) {
	for _, rule := range r.rules {
		if rule.Matches(entry) {
			return rule, true
		}
	}
	return model.ActivityRule{}, false
}
