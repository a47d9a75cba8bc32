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


// Package ai provides abstractions for the answer generation backend.
//
// The Generator interface decouples the question-answering pipeline from
// any concrete model service. Two implementations ship with the project:
//
//   - ai/openai: production implementation for OpenAI-compatible chat APIs
//   - ai/stub: offline fallback that answers without a model
//
// plus ai/mock for unit tests.
//
// Public constructors (openai.NewGenerator, stub.NewGenerator) return the
// ai.Generator interface to keep callers decoupled from the concrete
// types. The mock constructor returns a concrete type so tests can inject
// behavior and make assertions.
//
// # Usage Example
//
//	cfg := ai.NewConfig(
//	    ai.WithBackend(ai.BackendOpenAI),
//	    ai.WithHost("http://localhost:11434"),
//	    ai.WithModel("qwen2.5:3b"),
//	)
//	generator, err := openai.NewGenerator(cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	answer, err := generator.Generate(ctx, prompt)
package ai
