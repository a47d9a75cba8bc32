// Package mock provides a test double implementation of ai.Generator.
//
// MockGenerator lets tests run without a model service and inject
// controlled behavior:
//
//	g := mock.NewMockGenerator()
//	g.GenerateFunc = func(ctx context.Context, prompt string) (string, error) {
//	    return "", errors.New("backend down")
//	}
//	count := g.CallCount()
package mock
