package search

import "testing"

func TestTrie(t *testing.T) {
	trie := NewTrie()
	trie.Insert("hello")
	trie.Insert("world")
	trie.Insert("hell")
	trie.Insert("cat")
	trie.Insert("dog")
	trie.Insert("doggo")
	trie.Insert("doggy")
	trie.Insert("dogger")
	trie.Insert("dogging")
	trie.Insert("dogged")

	if !trie.Search("hello") {
		t.Error("Expected to find hello")
	}
	if !trie.Search("world") {
		t.Error("Expected to find world")
	}
	if trie.Search("wor") {
		t.Error("Expected prefix wor not to be a word")
	}
	matching := trie.FindMatches("dog")
	if len(matching) != 6 {
		t.Errorf("Expected 6 matches for dog, got %d", len(matching))
	}

	matching = trie.FindMatches("he")
	if len(matching) != 2 {
		t.Errorf("Expected 2 matches for he, got %d", len(matching))
	}
	if trie.FindMatches("x") != nil {
		t.Error("Expected no matches for x")
	}
}

func TestTrieOrdersByHits(t *testing.T) {
	trie := NewTrie()
	trie.Insert("react")
	trie.Insert("redis")
	trie.Insert("redis")
	trie.Insert("rest")

	matching := trie.FindMatches("re")
	expected := []string{"redis", "react", "rest"}
	if len(matching) != len(expected) {
		t.Fatalf("Expected %d matches, got %v", len(expected), matching)
	}
	for i, word := range expected {
		if matching[i].Word != word {
			t.Errorf("Expected %s at %d, got %s", word, i, matching[i].Word)
		}
	}
	if matching[0].Hits != 2 {
		t.Errorf("Expected 2 hits for redis, got %d", matching[0].Hits)
	}
}
