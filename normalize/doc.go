// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


// Package normalize canonicalizes text so that visually and semantically
// identical strings compare equal.
//
// Term-overlap ranking breaks on codepoint-distinct but visually identical
// characters: Arabic yeh (U+064A) and Persian yeh (U+06CC) render the same
// but never match each other. Normalization applies Unicode NFKC, unifies
// known per-script character variants, strips zero-width marks, and
// collapses whitespace. All functions are pure and total.
package normalize
