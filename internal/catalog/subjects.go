package catalog

import "github.com/alexanderramin/studyplan/internal/domain"

const (
	easy   = domain.DifficultyEasy
	medium = domain.DifficultyMedium
	hard   = domain.DifficultyHard
)

func spec(name string, priority int, d domain.Difficulty, category string, prereqs ...string) TopicSpec {
	return TopicSpec{
		Name:          name,
		Priority:      priority,
		Prerequisites: prereqs,
		Difficulty:    d,
		Category:      category,
	}
}

// DefaultSubjects returns a fresh copy of the built-in subject tables in
// match order. More specific subjects come before the languages they build on.
func DefaultSubjects() []SubjectTable {
	return []SubjectTable{
		{
			Key:       "react",
			Keywords:  []string{"react"},
			BaseCount: 12,
			Topics: []TopicSpec{
				spec("JSX and Components", 5, easy, "fundamentals"),
				spec("Props and State", 5, easy, "fundamentals", "JSX and Components"),
				spec("Event Handling", 5, easy, "fundamentals", "Props and State"),
				spec("Conditional Rendering and Lists", 5, easy, "fundamentals", "Props and State"),
				spec("Hooks Fundamentals", 4, medium, "hooks", "Props and State"),
				spec("useEffect and Side Effects", 4, medium, "hooks", "Hooks Fundamentals"),
				spec("Forms and Controlled Components", 4, medium, "interaction", "Event Handling"),
				spec("Data Fetching", 4, medium, "integration", "useEffect and Side Effects"),
				spec("Context API", 3, medium, "state management", "Hooks Fundamentals"),
				spec("React Router", 3, medium, "integration", "JSX and Components"),
				spec("Performance Optimization", 3, hard, "advanced", "Hooks Fundamentals"),
				spec("Testing React Components", 3, hard, "testing", "Forms and Controlled Components"),
			},
		},
		{
			Key:       "javascript",
			Keywords:  []string{"javascript", "ecmascript", "node.js"},
			BaseCount: 15,
			Topics: []TopicSpec{
				spec("Variables and Data Types", 5, easy, "fundamentals"),
				spec("Operators and Expressions", 5, easy, "fundamentals", "Variables and Data Types"),
				spec("Control Flow", 5, easy, "fundamentals", "Operators and Expressions"),
				spec("Functions", 5, medium, "fundamentals", "Control Flow"),
				spec("Arrays and Objects", 5, medium, "fundamentals", "Variables and Data Types"),
				spec("Scope and Closures", 4, medium, "core", "Functions"),
				spec("The DOM", 4, medium, "browser", "Arrays and Objects"),
				spec("Events and Event Handling", 4, medium, "browser", "The DOM", "Functions"),
				spec("ES6+ Features", 4, medium, "core", "Functions", "Arrays and Objects"),
				spec("Asynchronous JavaScript and Promises", 4, hard, "async", "Functions"),
				spec("Async/Await", 4, hard, "async", "Asynchronous JavaScript and Promises"),
				spec("Error Handling", 3, medium, "core", "Functions"),
				spec("Prototypes and Classes", 3, hard, "advanced", "Arrays and Objects", "Functions"),
				spec("Modules and Tooling", 3, medium, "ecosystem", "ES6+ Features"),
				spec("Testing JavaScript", 3, hard, "ecosystem", "Modules and Tooling"),
			},
		},
		{
			Key:       "machine learning",
			Keywords:  []string{"machine learning", "deep learning"},
			BaseCount: 15,
			Topics: []TopicSpec{
				spec("Python for Data Science", 5, easy, "foundations"),
				spec("Linear Algebra Essentials", 5, medium, "math"),
				spec("Probability and Statistics", 5, medium, "math"),
				spec("Data Preprocessing", 5, medium, "data", "Python for Data Science"),
				spec("Linear Regression", 4, medium, "supervised", "Linear Algebra Essentials", "Data Preprocessing"),
				spec("Logistic Regression", 4, medium, "supervised", "Linear Regression"),
				spec("Model Evaluation", 4, medium, "methodology", "Logistic Regression"),
				spec("Feature Engineering", 4, medium, "data", "Data Preprocessing"),
				spec("Decision Trees and Random Forests", 4, medium, "supervised", "Model Evaluation"),
				spec("Neural Networks", 4, hard, "deep learning", "Logistic Regression"),
				spec("Support Vector Machines", 3, hard, "supervised", "Logistic Regression"),
				spec("Clustering", 3, medium, "unsupervised", "Data Preprocessing"),
				spec("Dimensionality Reduction", 3, hard, "unsupervised", "Linear Algebra Essentials"),
				spec("Deep Learning Frameworks", 3, hard, "deep learning", "Neural Networks"),
				spec("Model Deployment", 3, hard, "production", "Model Evaluation"),
			},
		},
		{
			Key:       "python",
			Keywords:  []string{"python"},
			BaseCount: 15,
			Topics: []TopicSpec{
				spec("Syntax and Variables", 5, easy, "fundamentals"),
				spec("Data Types and Operators", 5, easy, "fundamentals", "Syntax and Variables"),
				spec("Control Flow", 5, easy, "fundamentals", "Data Types and Operators"),
				spec("Functions", 5, medium, "fundamentals", "Control Flow"),
				spec("Lists, Tuples and Dictionaries", 5, medium, "data structures", "Data Types and Operators"),
				spec("String Manipulation", 4, easy, "fundamentals", "Data Types and Operators"),
				spec("File Handling", 4, medium, "io", "Functions"),
				spec("Modules and Packages", 4, medium, "ecosystem", "Functions"),
				spec("Error Handling and Exceptions", 4, medium, "core", "Functions"),
				spec("Object-Oriented Programming", 4, hard, "core", "Functions", "Lists, Tuples and Dictionaries"),
				spec("Comprehensions and Generators", 3, medium, "core", "Lists, Tuples and Dictionaries", "Functions"),
				spec("Decorators", 3, hard, "advanced", "Functions"),
				spec("Virtual Environments and pip", 3, easy, "ecosystem", "Modules and Packages"),
				spec("Testing with pytest", 3, medium, "ecosystem", "Modules and Packages", "Error Handling and Exceptions"),
				spec("Concurrency with asyncio", 3, hard, "advanced", "Functions", "Error Handling and Exceptions"),
			},
		},
		{
			Key:       "data structures and algorithms",
			Keywords:  []string{"data structure", "algorithm", "dsa", "leetcode"},
			BaseCount: 15,
			Topics: []TopicSpec{
				spec("Big-O Complexity", 5, easy, "foundations"),
				spec("Arrays and Strings", 5, easy, "linear structures", "Big-O Complexity"),
				spec("Hash Tables", 5, medium, "linear structures", "Arrays and Strings"),
				spec("Linked Lists", 5, medium, "linear structures", "Arrays and Strings"),
				spec("Stacks and Queues", 5, easy, "linear structures", "Linked Lists"),
				spec("Recursion", 4, medium, "techniques", "Big-O Complexity"),
				spec("Two Pointers and Sliding Window", 4, medium, "techniques", "Arrays and Strings"),
				spec("Sorting Algorithms", 4, medium, "algorithms", "Arrays and Strings", "Recursion"),
				spec("Binary Search", 4, medium, "algorithms", "Sorting Algorithms"),
				spec("Trees and Binary Search Trees", 4, hard, "trees", "Recursion", "Linked Lists"),
				spec("Heaps and Priority Queues", 3, hard, "trees", "Trees and Binary Search Trees"),
				spec("Graphs and Traversal", 3, hard, "graphs", "Trees and Binary Search Trees", "Stacks and Queues"),
				spec("Greedy Algorithms", 3, medium, "algorithms", "Sorting Algorithms"),
				spec("Dynamic Programming", 3, hard, "algorithms", "Recursion", "Hash Tables"),
				spec("Backtracking", 3, hard, "techniques", "Recursion"),
			},
		},
		{
			Key:       "sql",
			Keywords:  []string{"sql", "database"},
			BaseCount: 10,
			Topics: []TopicSpec{
				spec("Relational Concepts", 5, easy, "foundations"),
				spec("SELECT and Filtering", 5, easy, "querying", "Relational Concepts"),
				spec("Sorting and Aggregation", 5, easy, "querying", "SELECT and Filtering"),
				spec("Joins", 5, medium, "querying", "SELECT and Filtering"),
				spec("Data Modification", 4, easy, "writing", "SELECT and Filtering"),
				spec("Subqueries", 4, medium, "querying", "Joins"),
				spec("Schema Design and Normalization", 4, medium, "design", "Relational Concepts"),
				spec("Indexes and Query Performance", 3, hard, "performance", "Joins"),
				spec("Window Functions", 3, hard, "querying", "Sorting and Aggregation", "Subqueries"),
				spec("Transactions", 3, hard, "writing", "Data Modification"),
			},
		},
	}
}
