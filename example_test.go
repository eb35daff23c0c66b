package oasmodel_test

import (
	"fmt"

	v "github.com/Gobd/oasmodel"
	"github.com/Gobd/oasmodel/model"
	"github.com/Gobd/oasmodel/oasio"
	"github.com/Gobd/oasmodel/tree"
)

type Pet struct {
	Name   string   `json:"name"`
	Status string   `json:"status"`
	Tags   []string `json:"tags"`
}

func (p *Pet) Rules() []*v.FieldRules {
	return []*v.FieldRules{
		v.Field(&p.Name, v.Required, v.Length(1, 50)),
		v.Field(&p.Status, v.In("available", "sold"), v.Default("available")),
		v.Field(&p.Tags, v.Length(0, 10), v.Unique("tag name")),
	}
}

func ExampleSchemaFor() {
	s, err := v.SchemaFor(Pet{})
	if err != nil {
		fmt.Println(err)
		return
	}
	name, _ := s.SchemaProperties().Get("name")
	status, _ := s.SchemaProperties().Get("status")
	tags, _ := s.SchemaProperties().Get("tags")

	fmt.Println(s.Required())
	fmt.Println(*name.MinLength(), *name.MaxLength())
	fmt.Println(status.Enum(), status.Default())
	fmt.Println(*tags.MaxItems(), tags.UniqueItems(), tags.Description())
	// Output:
	// [name]
	// 1 50
	// [available sold] available
	// 10 true Unique by tag name.
}

func ExampleAssembler_Assemble() {
	static := []byte(`{"openapi": "3.0.3", "info": {"title": "Pets", "version": "1"}}`)
	override := model.NewOpenAPI().AddServer(model.NewServer().SetURL("https://api.example.com"))

	doc, err := v.New(
		v.WithConfig(&v.Config{Info: v.InfoConfig{Version: "2"}}),
		v.WithStaticData(static),
		v.WithOverride(override),
	).Assemble()
	if err != nil {
		fmt.Println(err)
		return
	}
	out, _ := oasio.Marshal(doc, tree.JSON)
	fmt.Print(string(out))
	// Output:
	// {
	//   "openapi": "3.0.3",
	//   "info": {
	//     "title": "Pets",
	//     "version": "2"
	//   },
	//   "servers": [
	//     {
	//       "url": "https://api.example.com"
	//     }
	//   ]
	// }
}

func ExampleParseConfig() {
	cfg, err := v.ParseConfig([]byte(`
[document]
merge = "deep"

[profiles]
exclude = ["internal"]
`))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(cfg.Document.Merge, cfg.Profiles.Exclude, cfg.OutputFormat())
	// Output: deep [internal] yaml
}
