package main

import (
	"log"
	"os"

	"github.com/fatih/color"
	"github.com/joho/godotenv"

	"studyhub-be/internal/model"
	"studyhub-be/pkg/database"
)

func main() {
	// Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	color.Cyan("Seeding DSA Question Catalog...")

	questions := starterQuestions()

	created, skipped := 0, 0
	for _, q := range questions {
		// Questions keep their sheet number across reseeds
		var existing model.Question
		if err := db.Where("sno = ?", q.Sno).First(&existing).Error; err == nil {
			skipped++
			continue
		}

		if err := db.Create(&q).Error; err != nil {
			color.Red("Error creating question #%d '%s': %v", q.Sno, q.Problem, err)
			continue
		}
		color.Green("Created question #%d: %s", q.Sno, q.Problem)
		created++
	}

	color.Cyan("Question seeding completed: %d created, %d skipped.", created, skipped)
}

// starterQuestions is a compact slice of a standard interview-prep sheet,
// ordered by sheet number within topic.
func starterQuestions() []model.Question {
	return []model.Question{
		{Sno: 1, Topic: "Arrays", Subtopic: "Hashing", Pattern: "Hash Map", Problem: "Two Sum", Description: "Return indices of two numbers adding to target.", Difficulty: "Easy", Link: "https://leetcode.com/problems/two-sum/"},
		{Sno: 2, Topic: "Arrays", Subtopic: "Hashing", Pattern: "Hash Set", Problem: "Contains Duplicate", Description: "Detect whether any value appears at least twice.", Difficulty: "Easy", Link: "https://leetcode.com/problems/contains-duplicate/"},
		{Sno: 3, Topic: "Arrays", Subtopic: "Two Pointers", Pattern: "Sorted Pair", Problem: "Two Sum II", Description: "Two-pointer variant on a sorted input array.", Difficulty: "Medium", Link: "https://leetcode.com/problems/two-sum-ii-input-array-is-sorted/"},
		{Sno: 4, Topic: "Arrays", Subtopic: "Two Pointers", Pattern: "Converging Pointers", Problem: "Container With Most Water", Description: "Maximize area between two lines.", Difficulty: "Medium", Link: "https://leetcode.com/problems/container-with-most-water/"},
		{Sno: 5, Topic: "Arrays", Subtopic: "Sliding Window", Pattern: "Variable Window", Problem: "Longest Substring Without Repeating Characters", Description: "Grow and shrink a window tracking seen characters.", Difficulty: "Medium", Link: "https://leetcode.com/problems/longest-substring-without-repeating-characters/"},
		{Sno: 6, Topic: "Arrays", Subtopic: "Prefix Sum", Pattern: "Running Total", Problem: "Subarray Sum Equals K", Description: "Count subarrays summing to k with prefix sums.", Difficulty: "Medium", Link: "https://leetcode.com/problems/subarray-sum-equals-k/"},
		{Sno: 7, Topic: "Stacks", Subtopic: "Monotonic Stack", Pattern: "Next Greater", Problem: "Daily Temperatures", Description: "Days until a warmer temperature using a monotonic stack.", Difficulty: "Medium", Link: "https://leetcode.com/problems/daily-temperatures/"},
		{Sno: 8, Topic: "Stacks", Subtopic: "Matching", Pattern: "Stack Pairing", Problem: "Valid Parentheses", Description: "Match open and close brackets with a stack.", Difficulty: "Easy", Link: "https://leetcode.com/problems/valid-parentheses/"},
		{Sno: 9, Topic: "Linked Lists", Subtopic: "Pointers", Pattern: "In-place Reversal", Problem: "Reverse Linked List", Description: "Iteratively reverse the next pointers.", Difficulty: "Easy", Link: "https://leetcode.com/problems/reverse-linked-list/"},
		{Sno: 10, Topic: "Linked Lists", Subtopic: "Pointers", Pattern: "Fast and Slow", Problem: "Linked List Cycle", Description: "Detect a cycle with Floyd's tortoise and hare.", Difficulty: "Easy", Link: "https://leetcode.com/problems/linked-list-cycle/"},
		{Sno: 11, Topic: "Trees", Subtopic: "Traversal", Pattern: "BFS", Problem: "Binary Tree Level Order Traversal", Description: "Traverse level by level with a queue.", Difficulty: "Medium", Link: "https://leetcode.com/problems/binary-tree-level-order-traversal/"},
		{Sno: 12, Topic: "Trees", Subtopic: "Traversal", Pattern: "DFS", Problem: "Maximum Depth of Binary Tree", Description: "Recursive depth computation.", Difficulty: "Easy", Link: "https://leetcode.com/problems/maximum-depth-of-binary-tree/"},
		{Sno: 13, Topic: "Trees", Subtopic: "BST", Pattern: "Bounded DFS", Problem: "Validate Binary Search Tree", Description: "Carry min/max bounds down the recursion.", Difficulty: "Medium", Link: "https://leetcode.com/problems/validate-binary-search-tree/"},
		{Sno: 14, Topic: "Graphs", Subtopic: "Traversal", Pattern: "Flood Fill", Problem: "Number of Islands", Description: "Count connected components in a grid.", Difficulty: "Medium", Link: "https://leetcode.com/problems/number-of-islands/"},
		{Sno: 15, Topic: "Graphs", Subtopic: "Topological Sort", Pattern: "Kahn's Algorithm", Problem: "Course Schedule", Description: "Detect cycles in a prerequisite graph.", Difficulty: "Medium", Link: "https://leetcode.com/problems/course-schedule/"},
		{Sno: 16, Topic: "Dynamic Programming", Subtopic: "1D DP", Pattern: "Fibonacci Style", Problem: "Climbing Stairs", Description: "Classic bottom-up recurrence.", Difficulty: "Easy", Link: "https://leetcode.com/problems/climbing-stairs/"},
		{Sno: 17, Topic: "Dynamic Programming", Subtopic: "1D DP", Pattern: "House Robber", Problem: "House Robber", Description: "Take-or-skip recurrence over a line of houses.", Difficulty: "Medium", Link: "https://leetcode.com/problems/house-robber/"},
		{Sno: 18, Topic: "Dynamic Programming", Subtopic: "2D DP", Pattern: "Grid Paths", Problem: "Unique Paths", Description: "Count lattice paths with a 2D table.", Difficulty: "Medium", Link: "https://leetcode.com/problems/unique-paths/"},
		{Sno: 19, Topic: "Binary Search", Subtopic: "On Answer", Pattern: "Rotated Array", Problem: "Search in Rotated Sorted Array", Description: "Binary search with a pivot check.", Difficulty: "Medium", Link: "https://leetcode.com/problems/search-in-rotated-sorted-array/"},
		{Sno: 20, Topic: "Heaps", Subtopic: "Top K", Pattern: "Min Heap", Problem: "Kth Largest Element in an Array", Description: "Maintain a size-k min heap.", Difficulty: "Medium", Link: "https://leetcode.com/problems/kth-largest-element-in-an-array/"},
	}
}
