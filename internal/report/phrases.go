package report

// Phrase banks for the narrative paragraph and the recommendations list.
// Selection is seeded per repository, so the same tree always reads the same.

var dominantLanguagePhrases = []string{
	"The repository is strongly centered around %s",
	"The codebase is primarily driven by %s",
	"%s forms the architectural backbone of the project",
	"The project exhibits a clear preference for %s",
	"%s dominates the technical landscape of the repository",
	"The repository demonstrates a %s-centric architecture",
	"%s serves as the primary technical foundation",
	"The codebase shows strong alignment with %s",
	"%s represents the core technology choice",
	"The project's technical identity is shaped by %s",
}

var documentationHighPhrases = []string{
	"Documentation coverage is notably strong",
	"The repository prioritizes written clarity",
	"Documentation presence enhances maintainability",
	"Written guidance demonstrates engineering discipline",
	"Documentation depth supports long-term sustainability",
	"The codebase benefits from comprehensive documentation",
	"Documentation quality indicates mature development practices",
}

var documentationMediumPhrases = []string{
	"Documentation coverage is moderate",
	"Written guidance exists but could expand",
	"Documentation provides basic orientation",
	"Some documentation presence aids navigation",
	"Documentation coverage meets minimum requirements",
}

var documentationLowPhrases = []string{
	"Documentation footprint is minimal",
	"Limited documentation may impact onboarding",
	"Documentation coverage is sparse",
	"The repository would benefit from expanded documentation",
	"Written guidance is insufficient for complex navigation",
}

var documentationNonePhrases = []string{
	"Documentation is absent, which may hinder collaboration",
	"No documentation detected, creating potential knowledge gaps",
	"The repository lacks written guidance entirely",
}

var complexityLowPhrases = []string{
	"The structure suggests lightweight modular design",
	"File density indicates clean separation of concerns",
	"Low complexity reflects thoughtful architectural decisions",
	"The codebase demonstrates elegant simplicity",
	"Structural minimalism enhances code clarity",
	"File organization suggests disciplined engineering",
}

var complexityMediumPhrases = []string{
	"The repository maintains moderate structural complexity",
	"Module sizing reflects practical engineering balance",
	"Complexity levels indicate realistic project scope",
	"The codebase shows balanced architectural density",
	"Structural complexity aligns with project maturity",
}

var complexityHighPhrases = []string{
	"The project leans toward dense architectural design",
	"Large modules increase structural weight",
	"High complexity suggests consolidation opportunities",
	"The codebase exhibits significant structural density",
	"Complexity levels may benefit from refactoring efforts",
}

var balanceGoodPhrases = []string{
	"The code distribution appears balanced across modules",
	"File sizing suggests healthy modular segmentation",
	"Structural symmetry contributes to maintainability",
	"Even distribution indicates thoughtful organization",
	"The codebase demonstrates architectural equilibrium",
	"Balanced structure supports scalable development",
}

var balanceModeratePhrases = []string{
	"Code distribution shows moderate balance",
	"Structural organization has room for optimization",
	"Module distribution is somewhat uneven",
	"The codebase exhibits partial structural symmetry",
}

var balancePoorPhrases = []string{
	"Uneven distribution may benefit from refactoring",
	"Code concentration suggests consolidation opportunities",
	"Structural imbalance indicates architectural debt",
	"The repository shows significant distribution skew",
	"Concentrated code structure may impact maintainability",
}

var ecosystemPhrases = []string{
	"Primary ecosystem focus: %s",
	"The repository aligns with the %s ecosystem",
	"Technical orientation favors %s tooling",
	"The project demonstrates strong %s ecosystem integration",
	"Ecosystem alignment centers on %s technologies",
	"The codebase reflects %s ecosystem conventions",
	"The repository shows clear %s ecosystem orientation",
	"Technical stack emphasizes %s ecosystem patterns",
}

var healthHighPhrases = []string{
	"Overall repository health is strong",
	"Engineering hygiene appears well maintained",
	"The codebase demonstrates excellent structural quality",
	"Repository health indicators are positive",
	"The project exhibits robust engineering practices",
}

var healthMediumPhrases = []string{
	"Repository health is stable with improvement potential",
	"The codebase shows moderate engineering quality",
	"Structural health has room for enhancement",
	"Repository indicators suggest steady maintenance",
}

var healthLowPhrases = []string{
	"Structural signals suggest maintenance opportunities",
	"Repository health indicates refactoring needs",
	"The codebase would benefit from structural improvements",
	"Health metrics reveal optimization potential",
	"Engineering quality shows areas for enhancement",
}

var densityReasonablePhrases = []string{
	"Average file size indicates manageable complexity",
	"File density supports maintainable code structure",
	"Module sizing reflects practical engineering constraints",
	"Code density aligns with best practices",
}

var densityLowPhrases = []string{
	"Low file density suggests highly modular design",
	"Small average file size indicates granular architecture",
	"Minimal file density reflects micro-module approach",
}

var densityHighPhrases = []string{
	"High file density may indicate consolidation needs",
	"Large average file size suggests refactoring opportunities",
	"Dense file structure could benefit from decomposition",
}

var testCoveragePhrases = []string{
	"Consider expanding automated test coverage",
	"Adding comprehensive test suites would enhance reliability",
	"Test coverage appears limited and could be strengthened",
	"Implementing systematic testing would improve code quality",
	"The repository would benefit from expanded test infrastructure",
}

var documentationRecommendations = []string{
	"Increasing documentation depth would improve maintainability",
	"Expanding written guidance would enhance developer onboarding",
	"Documentation coverage should be prioritized for long-term sustainability",
	"Consider establishing documentation standards and practices",
	"The repository would benefit from comprehensive documentation",
}

var modularizationPhrases = []string{
	"Refactoring oversized modules may enhance clarity",
	"Consider breaking down large files into focused components",
	"Modularization efforts could improve code maintainability",
	"Large modules present opportunities for structural decomposition",
	"File size reduction would improve code navigation",
}

var structuralPhrases = []string{
	"Structural simplification could improve long-term scalability",
	"Optimizing file organization would enhance maintainability",
	"Consider reorganizing code distribution for better balance",
	"Structural refactoring could improve architectural clarity",
	"File organization patterns could be standardized",
}

var healthImprovementPhrases = []string{
	"Repository health could be improved through systematic refactoring",
	"Addressing structural debt would enhance overall code quality",
	"Comprehensive code review could identify improvement opportunities",
	"Engineering practices could be strengthened to improve health metrics",
}

var transitionPhrases = []string{
	"Furthermore, ",
	"Additionally, ",
	"Moreover, ",
	"In addition, ",
	"Notably, ",
	"Significantly, ",
	"Importantly, ",
	"Consequently, ",
	"Accordingly, ",
	"",
}
