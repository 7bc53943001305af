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

package reconcile

import (
	"fmt"
	"net/http"

	errors2 "github.com/wso2/media-metadata-service/internal/system/errors"

	"github.com/wso2/media-metadata-service/internal/media/model"
)

type RoomAssociationReconcilerInterface interface {
	Reconcile(requested, current []model.RoomAssociation) (model.ReconciliationResult, error)
}

// RoomAssociationReconciler diffs a requested room-association set against the
// currently stored set. Pure; no store access.
type RoomAssociationReconciler struct{}

// NewRoomAssociationReconciler returns a reconciler instance.
func NewRoomAssociationReconciler() RoomAssociationReconcilerInterface {
	return &RoomAssociationReconciler{}
}

// Reconcile computes the minimal catalog and paragraph change-sets between the
// requested and current association sets. The two diffs are independent: the
// catalog diff is presence-only, the paragraph diff follows hero transitions.
// A paragraph exists only for a room whose media is currently flagged hero.
func (rc *RoomAssociationReconciler) Reconcile(requested, current []model.RoomAssociation) (model.ReconciliationResult, error) {

	requestedByID, err := indexByRoomID(requested)
	if err != nil {
		return model.ReconciliationResult{}, err
	}
	currentByID, err := indexByRoomID(current)
	if err != nil {
		return model.ReconciliationResult{}, err
	}

	var result model.ReconciliationResult

	for _, room := range requested {
		if _, ok := currentByID[room.RoomID]; !ok {
			result.AddCatalog = append(result.AddCatalog, room)
		}
	}
	for _, room := range current {
		if _, ok := requestedByID[room.RoomID]; !ok {
			result.RemoveCatalog = append(result.RemoveCatalog, room)
		}
	}

	// Paragraph changes track hero transitions only. A room keeping its hero
	// flag, in either state, produces no change.
	for _, room := range requested {
		if !room.IsHero {
			continue
		}
		existing, ok := currentByID[room.RoomID]
		if !ok || !existing.IsHero {
			result.AddParagraph = append(result.AddParagraph, room)
		}
	}
	for _, room := range current {
		if !room.IsHero {
			continue
		}
		incoming, ok := requestedByID[room.RoomID]
		if !ok || !incoming.IsHero {
			result.RemoveParagraph = append(result.RemoveParagraph, room)
		}
	}

	return result, nil
}

func indexByRoomID(rooms []model.RoomAssociation) (map[int]model.RoomAssociation, error) {

	byID := make(map[int]model.RoomAssociation, len(rooms))
	for _, room := range rooms {
		if _, ok := byID[room.RoomID]; ok {
			return nil, errors2.NewClientError(errors2.ErrorMessage{
				Code:        errors2.DUPLICATE_ROOM_ASSOCIATION.Code,
				Message:     errors2.DUPLICATE_ROOM_ASSOCIATION.Message,
				Description: fmt.Sprintf("Room id %d appears more than once in the association set", room.RoomID),
			}, http.StatusBadRequest)
		}
		byID[room.RoomID] = room
	}
	return byID, nil
}
