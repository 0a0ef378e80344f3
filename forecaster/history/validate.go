/*
 *     Copyright 2024 The Medalcast Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *      http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package history

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrInvalid is wrapped by every validation error of a history row.
var ErrInvalid = errors.New("invalid history")

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterStructValidation(func(sl validator.StructLevel) {
		h := sl.Current().Interface().(CountryHistory)
		if h.GoldMedals+h.SilverMedals+h.BronzeMedals != h.TotalMedals {
			sl.ReportError(h.TotalMedals, "TotalMedals", "total_medals", "medalsum", "")
		}

		if h.RecentMedals > h.TotalMedals {
			sl.ReportError(h.RecentMedals, "RecentMedals", "recent_medals", "ltetotal", "")
		}
	}, CountryHistory{})

	return v
}

// Validate checks a country history before feature computation.
func Validate(h CountryHistory) error {
	if err := validate.Struct(h); err != nil {
		return wrapValidationError(h.CountryCode, err)
	}

	return nil
}

// ValidateGameTotal checks a games total row.
func ValidateGameTotal(g GameTotal) error {
	if err := validate.Struct(g); err != nil {
		return wrapValidationError(g.CountryName, err)
	}

	return nil
}

func wrapValidationError(key string, err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w %s: %v", ErrInvalid, key, err)
	}

	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fmt.Sprintf("%s failed on %s", fe.Field(), fe.Tag()))
	}

	return fmt.Errorf("%w %s: %s", ErrInvalid, key, strings.Join(fields, ", "))
}
