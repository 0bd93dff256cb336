package schema

import domainErrors "portfolio-go-server/domain/errors"

// SectionIDs is the fixed set of sections the admin surface edits.
var SectionIDs = []string{
	"header", "hero", "about", "projects", "skills", "experience", "contact", "seo",
}

// Registry maps section ids to their schemas. Immutable after startup.
type Registry struct {
	schemas map[string]*Schema
}

// NewRegistry builds the registry for the full admin surface. Shapes and
// fallback literals mirror the public site components field for field.
func NewRegistry() *Registry {
	schemas := make(map[string]*Schema)

	add := func(s *Schema) { schemas[s.SectionID] = s }

	add(&Schema{
		SectionID: "header",
		Fields: []Field{
			ImageURL("logo", ""),
			Object("navigation",
				List("items", Object("",
					Text("label", ""),
					Text("url", ""),
				)),
			),
		},
	})

	add(&Schema{
		SectionID: "hero",
		Fields: []Field{
			Text("title", "Hello, I'm"),
			Text("subtitle", "Haseeb"),
			RichText("description", "Full Stack Developer"),
			ImageURL("image", ""),
			Object("primaryCTA",
				Text("text", "View My Work"),
				Text("url", "#projects"),
			),
			Object("secondaryCTA",
				Text("text", "Contact Me"),
				Text("url", "#contact"),
			),
		},
	})

	add(&Schema{
		SectionID: "about",
		Fields: []Field{
			Text("title", "About"),
			RichText("description", "I'm a creative professional with a passion for excellence."),
			RichText("secondaryDescription", "With a strong foundation in my field, I specialize in delivering exceptional results."),
			ImageURL("image", "https://images.pexels.com/photos/2379004/pexels-photo-2379004.jpeg"),
			Object("personalInfo",
				Text("name", "Your Name"),
				Text("location", "Your Location"),
				Text("email", "your.email@example.com"),
			),
		},
	})

	add(&Schema{
		SectionID: "projects",
		Fields: []Field{
			Text("title", "My Projects"),
			RichText("description", "Here are some of my recent projects. Each one was carefully crafted to solve real problems while delivering exceptional user experiences."),
			List("projects", WithGeneratedID(Object("",
				Number("id", 0, 0),
				Text("title", ""),
				Text("description", ""),
				ImageURL("image", ""),
				List("tags", Text("", "")),
				Text("link", ""),
				Text("github", ""),
			))),
		},
	})

	add(&Schema{
		SectionID: "skills",
		Fields: []Field{
			Text("title", "My Skills"),
			RichText("description", "I've mastered a diverse set of design tools and techniques throughout my career. Here's a glimpse of my creative expertise and proficiency levels."),
			List("skills", Object("",
				Text("name", ""),
				Number("level", 0, 100),
				Enumerated(Text("category", ""), "design", "development", "tools", "other"),
			)),
		},
	})

	add(&Schema{
		SectionID: "experience",
		Fields: []Field{
			Text("title", "Work Experience"),
			RichText("description", "My professional journey has equipped me with a diverse skill set and valuable experience working across different environments and technologies."),
			List("experiences", WithGeneratedID(Object("",
				Number("id", 0, 0),
				Text("company", ""),
				Text("position", ""),
				Text("duration", ""),
				List("description", Text("", "")),
			))),
		},
	})

	add(&Schema{
		SectionID: "contact",
		Fields: []Field{
			Text("title", "Get In Touch"),
			RichText("description", "Have a project in mind? Let's discuss how we can work together to bring your ideas to life."),
			Text("email", "contact@example.com"),
			Text("phone", "+1 (234) 567-890"),
			Text("address", "123 Business Street, New York, NY 10001"),
			List("socialLinks", Object("",
				Text("platform", ""),
				Text("url", ""),
			)),
			Object("formSettings",
				Bool("emailNotifications"),
				Bool("autoResponse"),
				Text("responseMessage", ""),
			),
		},
	})

	seoMeta := func(name string) Field {
		return Object(name,
			Text("title", ""),
			Text("description", ""),
			List("keywords", Text("", "")),
		)
	}
	add(&Schema{
		SectionID:  "seo",
		LazyCreate: true,
		Fields: []Field{
			Object("globalMeta",
				Text("title", ""),
				Text("description", ""),
				List("keywords", Text("", "")),
				ImageURL("ogImage", ""),
				Text("twitterHandle", ""),
			),
			Object("sections",
				seoMeta("home"),
				seoMeta("about"),
				seoMeta("projects"),
				seoMeta("skills"),
				seoMeta("experience"),
				seoMeta("contact"),
			),
		},
	})

	return &Registry{schemas: schemas}
}

// SchemaFor is a pure lookup. Unknown ids yield ErrUnknownSection so the
// editor fails fast with a configuration error instead of rendering an
// empty form.
func (r *Registry) SchemaFor(sectionID string) (*Schema, error) {
	s, ok := r.schemas[sectionID]
	if !ok {
		return nil, domainErrors.ErrUnknownSection
	}
	return s, nil
}
