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

package api

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/softuni-qa/foody/pkg/foody"
)

func generateRandomName(prefix string) string {
	bytes := make([]byte, 4) // 8 hex characters
	_, _ = rand.Read(bytes)

	return fmt.Sprintf("%s-%s", prefix, hex.EncodeToString(bytes))
}

// FoodPayloadBuilder builds food payloads for testing.
type FoodPayloadBuilder struct {
	food foody.Food
}

// NewFoodPayload creates a food payload with a unique name so concurrent
// runs against a shared service don't collide.
func NewFoodPayload() *FoodPayloadBuilder {
	return &FoodPayloadBuilder{
		food: foody.Food{
			Name:        generateRandomName("testautomation-food"),
			Description: "Created by the Foody API test suite",
		},
	}
}

// WithName sets the food name (pass empty string to omit).
func (b *FoodPayloadBuilder) WithName(name string) *FoodPayloadBuilder {
	b.food.Name = name
	return b
}

// WithDescription sets the food description (pass empty string to omit).
func (b *FoodPayloadBuilder) WithDescription(desc string) *FoodPayloadBuilder {
	b.food.Description = desc
	return b
}

// Build returns the completed food payload.
func (b *FoodPayloadBuilder) Build() foody.Food {
	return b.food
}

// PatchBuilder builds ordered edit instructions.
type PatchBuilder struct {
	patch foody.Patch
}

func NewPatch() *PatchBuilder {
	return &PatchBuilder{}
}

// Replace appends a replace operation.
func (b *PatchBuilder) Replace(path, value string) *PatchBuilder {
	b.patch = append(b.patch, foody.Replace(path, value))
	return b
}

func (b *PatchBuilder) Build() foody.Patch {
	return b.patch
}
