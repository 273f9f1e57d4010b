// Package docwriter writes Go object graphs into JSON-like documents,
// omitting values that equal their defaults.
//
// The library is organized into several packages with distinct responsibilities:
//
//	docwriter/           Root package with the Writer facade
//	├── serializer/      Engine: dispatch, pointer resolution, class and container walkers
//	├── catalog/         Reflection-based class metadata and default instances
//	├── builtin/         Serializers for scalars, uuid, time and enums
//	├── document/        Document tree with JSON and YAML encoding
//	├── meta/            Class metadata model
//	├── result/          Task/outcome status and combination
//	├── docpath/         Document path tracking for diagnostics
//	└── errors/          Structured diagnostics
//
// # Quick Start
//
//	w := docwriter.New()
//	out, err := w.Store(&scene)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	data, _ := out.JSON(true)
//	fmt.Println(string(data))
//	for _, d := range out.Diagnostics {
//	    fmt.Println(d)
//	}
//
// # Defaults
//
// Every value is compared against a default instance of its type: the Go
// zero value, the result of SetDefaults for types implementing
// catalog.Defaulter, or a constructor installed with catalog.RegisterDefault.
// Members equal to their default are left out; a value that is entirely
// default is written as {}. Set Config.KeepDefaults to write everything.
//
// # Polymorphism
//
// Interface fields are written with a "$type" member naming the dynamic type
// when it cannot be inferred from the default. Dynamic types must be
// registered with Writer.Register before they are written; unregistered
// ones are reported and skipped.
//
// # Thread Safety
//
// Writer is safe for concurrent use once all types are registered. The
// object graph being written must not change during Store and must be
// acyclic.
package docwriter
