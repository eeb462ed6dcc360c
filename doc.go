// Package valueholder is the root of a small ValueHolder module wired with
// explicit dependency injection.
//
// See subpackages:
//   - holder: ValueHolder and its diagnostic Sink
//   - di: Service/Inject wiring helpers and the optional-deps Registry
//   - config: defaults, YAML file, .env and HOLDER_* environment layering
//   - app: composition root; BuildHolder and a reporting Session
//   - cmd/holderdemo: runnable example of the whole graph
package valueholder
