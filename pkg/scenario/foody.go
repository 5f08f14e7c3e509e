/*
Copyright 2026 the Foody QA Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package scenario

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-logr/logr"

	"github.com/softuni-qa/foody/pkg/foody"
)

const (
	FoodName        = "New Food 1"
	FoodDescription = "New description 1"
	EditedName      = "Edited Title"
	MissingFoodName = "new title"
	// MissingFoodID is an identifier the service never issues.
	MissingFoodID = "12345"
	NamePath      = "/name"

	MsgEdited         = "Successfully edited"
	MsgDeleted        = "Deleted successfully!"
	MsgFoodNotFound   = "No food revues..."
	MsgUnableToDelete = "Unable to delete this food revue!"
)

// Foody returns the food lifecycle chain.  Edit and delete depend on the
// food created first, and the negative paths run last.
func Foody() []Scenario {
	return []Scenario{
		{Order: 1, Name: "create food with required fields returns created and food ID", Run: createFood},
		{Order: 2, Name: "edit food title returns OK and success message", Run: editFood},
		{Order: 3, Name: "get all foods returns OK and non-empty array", Run: listFoods},
		{Order: 4, Name: "delete edited food returns OK and success message", Run: deleteFood},
		{Order: 5, Name: "create food without required fields returns bad request", Run: createInvalidFood},
		{Order: 6, Name: "edit non-existing food returns not found and no food message", Run: editMissingFood},
		{Order: 7, Name: "delete non-existing food returns bad request and unable to delete message", Run: deleteMissingFood},
	}
}

func createFood(ctx context.Context, client *foody.APIClient, fixture *Fixture) (*foody.Response, error) {
	resp, err := client.CreateFood(ctx, foody.Food{
		Name:        FoodName,
		Description: FoodDescription,
	})
	if err != nil {
		return nil, err
	}

	if err := expectStatus(resp, http.StatusCreated); err != nil {
		return resp, err
	}

	decoded, err := foody.Decode[foody.APIResponse](resp.Body)
	if err != nil {
		return resp, err
	}

	id, err := decoded.RequireFoodID()
	if err != nil {
		return resp, err
	}

	fixture.FoodID = id

	logr.FromContextOrDiscard(ctx).V(1).Info("created food", "foodID", id)

	return resp, nil
}

func editFood(ctx context.Context, client *foody.APIClient, fixture *Fixture) (*foody.Response, error) {
	id, err := fixture.RequireFoodID()
	if err != nil {
		return nil, err
	}

	resp, err := client.EditFood(ctx, id, foody.Patch{foody.Replace(NamePath, EditedName)})
	if err != nil {
		return nil, err
	}

	if err := expectStatus(resp, http.StatusOK); err != nil {
		return resp, err
	}

	return resp, expectMsg(resp, MsgEdited)
}

func listFoods(ctx context.Context, client *foody.APIClient, _ *Fixture) (*foody.Response, error) {
	resp, err := client.ListFoods(ctx)
	if err != nil {
		return nil, err
	}

	if err := expectStatus(resp, http.StatusOK); err != nil {
		return resp, err
	}

	// Only the shape is checked, items may carry any fields.
	foods, err := foody.DecodeList[json.RawMessage](resp.Body)
	if err != nil {
		return resp, err
	}

	if len(foods) == 0 {
		return resp, &AssertionError{
			What:     "food count",
			Expected: "> 0",
			Actual:   0,
			TraceID:  resp.TraceID,
		}
	}

	return resp, nil
}

func deleteFood(ctx context.Context, client *foody.APIClient, fixture *Fixture) (*foody.Response, error) {
	id, err := fixture.RequireFoodID()
	if err != nil {
		return nil, err
	}

	resp, err := client.DeleteFood(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := expectStatus(resp, http.StatusOK); err != nil {
		return resp, err
	}

	return resp, expectMsg(resp, MsgDeleted)
}

// createInvalidFood only asserts the status, the service's error body
// is not part of the contract.
func createInvalidFood(ctx context.Context, client *foody.APIClient, _ *Fixture) (*foody.Response, error) {
	resp, err := client.CreateFood(ctx, foody.Food{})
	if err != nil {
		return nil, err
	}

	return resp, expectStatus(resp, http.StatusBadRequest)
}

func editMissingFood(ctx context.Context, client *foody.APIClient, _ *Fixture) (*foody.Response, error) {
	resp, err := client.EditFood(ctx, MissingFoodID, foody.Patch{foody.Replace(NamePath, MissingFoodName)})
	if err != nil {
		return nil, err
	}

	if err := expectStatus(resp, http.StatusNotFound); err != nil {
		return resp, err
	}

	return resp, expectBodyContains(resp, MsgFoodNotFound)
}

func deleteMissingFood(ctx context.Context, client *foody.APIClient, _ *Fixture) (*foody.Response, error) {
	resp, err := client.DeleteFood(ctx, MissingFoodID)
	if err != nil {
		return nil, err
	}

	if err := expectStatus(resp, http.StatusBadRequest); err != nil {
		return resp, err
	}

	return resp, expectBodyContains(resp, MsgUnableToDelete)
}
