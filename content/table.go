// Package content holds the static content table of the Computer Use demo
// deck: which layout each slide uses and which elements populate it.
//
// The table is independent of serialization, so it can be built and
// validated without touching the presentation library:
//
//	doc := content.Deck(content.DefaultMetadata())
//	if issues := content.Validate(doc); len(issues) > 0 {
//	    log.Fatal(content.FormatIssues(issues))
//	}
package content

import "github.com/tsawler/deckbuilder/model"

// SlideCount is the number of slides in the deck.
const SlideCount = 16

// Entry pairs a slide's layout with the function that populates it.
type Entry struct {
	Layout   model.LayoutKind
	Populate func() []model.Element
}

// DefaultMetadata returns the document properties written to the deck.
func DefaultMetadata() model.Metadata {
	return model.Metadata{
		Title:   "Computer Use Demo with Claude AI",
		Creator: "deckbuilder",
	}
}

// Table returns the content table in presentation order.
func Table() []Entry {
	return []Entry{
		{model.LayoutTitle, titleSlide},
		{model.LayoutTitleAndContent, projectOverview},
		{model.LayoutTitleAndContent, keyFeatures},
		{model.LayoutBlank, architecture},
		{model.LayoutTitleAndContent, supportedPlatforms},
		{model.LayoutTitleAndContent, useCases},
		{model.LayoutTitleAndContent, demoScenarios},
		{model.LayoutTitleAndContent, performanceMetrics},
		{model.LayoutTitleAndContent, developmentWorkflow},
		{model.LayoutTitleAndContent, roadmap},
		{model.LayoutTitleAndContent, teamBenefits},
		{model.LayoutTitleAndContent, securityConsiderations},
		{model.LayoutTitleAndContent, costAnalysis},
		{model.LayoutTitleAndContent, integrationPossibilities},
		{model.LayoutTitleAndContent, questionsAndNextSteps},
		{model.LayoutTitle, thankYou},
	}
}

// Deck builds the document from the content table on the 16:9 page.
func Deck(meta model.Metadata) *model.Document {
	entries := Table()
	slides := make([]model.Slide, 0, len(entries))
	for _, e := range entries {
		slides = append(slides, model.NewSlide(e.Layout, e.Populate()...))
	}
	return model.NewDocument(model.Widescreen, meta, slides...)
}

func titleSlide() []model.Element {
	return []model.Element{
		model.Title("Computer Use Demo with Claude AI"),
		model.Subtitle("Autonomous Computer Control Through Natural Language\n\nTransforming Human-Computer Interaction"),
	}
}

func projectOverview() []model.Element {
	return titleAndContent("Project Overview",
		header("What is Computer Use?"),
		bullet("• Natural language computer control - Users give instructions in plain English"),
		bullet("• Claude AI integration - Powered by Anthropic's latest models"),
		bullet("• Autonomous task execution - AI controls mouse, keyboard, and applications"),
		bullet("• Web-based interface - Easy-to-use Streamlit application"),
	)
}

func keyFeatures() []model.Element {
	return titleAndContent("Key Features",
		header("Core Capabilities"),
		bullet("📸 Screenshot Analysis - AI can see and understand what's on screen"),
		bullet("🖱️ Mouse Control - Click, drag, scroll operations"),
		bullet("⌨️ Keyboard Input - Type text, use shortcuts"),
		bullet("💻 Command Execution - Run bash commands"),
		bullet("📝 File Editing - Create and modify files"),
	)
}

func architecture() []model.Element {
	return []model.Element{
		model.NewTextBox(model.NewRect(0.5, 0.5, 9, 0.75),
			model.NewParagraph("Technical Architecture", model.Size(32), model.Bold())),
		box(model.NewRect(1, 1.5, 2, 0.75), ColorUI, "Streamlit UI"),
		box(model.NewRect(4, 1.5, 2, 0.75), ColorAgent, "Agent Loop"),
		box(model.NewRect(7, 1.5, 2, 0.75), ColorAPI, "Claude API"),
		listBox(model.NewRect(4, 3, 2, 1.5), ColorTools, "Tool System", "• Computer\n• Bash\n• Edit"),
	}
}

func supportedPlatforms() []model.Element {
	return titleAndContent("Supported Platforms",
		header("API Providers"),
		bullet("• Anthropic Direct - Primary API endpoint"),
		bullet("• AWS Bedrock - Enterprise AWS integration"),
		bullet("• Google Vertex AI - GCP deployment option"),
		subheader("Model Support"),
		bullet("• Claude 3.5 Sonnet - Standard features"),
		bullet("• Claude 3.7 Sonnet - Enhanced with thinking mode"),
		bullet("• Claude 4 - Latest capabilities"),
	)
}

func useCases() []model.Element {
	return titleAndContent("Use Cases",
		header("Practical Applications"),
		bullet("1. Automated Testing - UI testing without traditional frameworks"),
		bullet("2. Data Entry - Automate repetitive form filling"),
		bullet("3. System Administration - Execute complex command sequences"),
		bullet("4. Research Assistant - Web browsing and information gathering"),
		bullet("5. Accessibility - Voice-controlled computer operation"),
	)
}

func demoScenarios() []model.Element {
	return titleAndContent("Live Demo Scenarios",
		header("Example Tasks"),
		quote(`"Open a browser and search for Python tutorials"`),
		quote(`"Create a spreadsheet with quarterly sales data"`),
		quote(`"Debug this error message on my screen"`),
		quote(`"Install and configure a development environment"`),
	)
}

func performanceMetrics() []model.Element {
	return titleAndContent("Performance Metrics",
		header("Efficiency Gains"),
		bullet("• Task Completion - 85% success rate on common tasks"),
		bullet("• Time Savings - 10x faster than manual execution"),
		bullet("• Token Optimization - Prompt caching reduces API costs by 40%"),
		bullet("• Response Time - Average 2-3 seconds per action"),
	)
}

func developmentWorkflow() []model.Element {
	return titleAndContent("Development Workflow",
		header("Quick Start"),
		comment("# Install dependencies"),
		command("pip install -r requirements.txt"),
		comment("\n# Set API key"),
		command(`export ANTHROPIC_API_KEY="your-key"`),
		comment("\n# Launch application"),
		command("streamlit run app.py"),
	)
}

func roadmap() []model.Element {
	return titleAndContent("Roadmap & Future Enhancements",
		header("Planned Features"),
		bullet("🔄 Multi-window support - Control multiple applications"),
		bullet("🎯 Visual element detection - Click buttons by description"),
		bullet("📊 Usage analytics - Track and optimize common workflows"),
		bullet("🔒 Enhanced security - Sandboxed execution environment"),
		bullet("🌐 Browser automation - Native web scraping capabilities"),
	)
}

func teamBenefits() []model.Element {
	return titleAndContent("Team Benefits",
		header("For Developers"),
		bullet("• Rapid prototyping of automation workflows"),
		bullet("• No complex automation frameworks"),
		bullet("• Easy integration with existing systems"),
		subheader("For Business Users"),
		bullet("• Automate without coding"),
		bullet("• Natural language interface"),
		bullet("• Immediate productivity gains"),
	)
}

func securityConsiderations() []model.Element {
	return titleAndContent("Security Considerations",
		header("Built-in Protections"),
		bullet("⚠️ Warning system - User confirmation for sensitive operations"),
		bullet("🔐 Credential management - Secure API key storage"),
		bullet("📝 Audit logging - Track all AI actions"),
		bullet("🚫 Restricted operations - Configurable action limits"),
	)
}

func costAnalysis() []model.Element {
	return titleAndContent("Cost Analysis",
		header("API Usage Optimization"),
		bullet("• Prompt Caching - Reuse common prompts"),
		bullet("• Image Compression - Reduce screenshot tokens"),
		bullet("• Selective Screenshots - Only capture when needed"),
		emphasis("• Estimated Cost - ~$0.10 per complex task"),
	)
}

func integrationPossibilities() []model.Element {
	return titleAndContent("Integration Possibilities",
		header("Enterprise Systems"),
		bullet("• CRM Integration - Automate data entry"),
		bullet("• Testing Pipelines - Add to CI/CD"),
		bullet("• Help Desk - Automated ticket resolution"),
		bullet("• Training Systems - Interactive tutorials"),
	)
}

func questionsAndNextSteps() []model.Element {
	return titleAndContent("Questions & Next Steps",
		header("Let's Discuss"),
		bullet("• Implementation strategies for your use cases"),
		bullet("• Technical requirements and constraints"),
		bullet("• Security and compliance considerations"),
		subheader("Next Steps"),
		bullet("1. Schedule technical deep-dive session"),
		bullet("2. Proof of concept for your specific use case"),
		bullet("3. Security and compliance review"),
		bullet("4. Deployment and rollout planning"),
	)
}

func thankYou() []model.Element {
	return []model.Element{
		model.Title("Thank You!"),
		model.Subtitle("Transform How Your Team Interacts with Computers\n\nNatural Language → Automated Actions\n\nQuestions? Let's build the future together."),
	}
}
