package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLookupQuery_Defaults(t *testing.T) {
	tests := []struct {
		kind        LookupKind
		contentType ContentType
	}{
		{PostsSearch, ContentPosts},
		{FunctionsSearch, ContentFunctions},
		{HooksSearch, ContentHooks},
		{ClassesSearch, ContentClasses},
		{VipSearch, ContentPosts},
		{FunctionLookup, ContentFunctions},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			q, err := NewLookupQuery(tt.kind, "  the_title  ", "", "")
			require.NoError(t, err)
			assert.Equal(t, "the_title", q.Term)
			assert.Equal(t, SectionAll, q.Section)
			assert.Equal(t, tt.contentType, q.ContentType)
		})
	}
}

func TestNewLookupQuery_RejectsEmptyTerm(t *testing.T) {
	for _, term := range []string{"", "   ", "\t\n"} {
		_, err := NewLookupQuery(PostsSearch, term, "", "")
		require.Error(t, err)
		assert.True(t, IsValidation(err))
	}
}

func TestNewLookupQuery_RejectsInvalidEnums(t *testing.T) {
	_, err := NewLookupQuery(VipSearch, "cache", Section("nowhere"), "")
	assert.True(t, IsValidation(err))

	_, err = NewLookupQuery(PostsSearch, "cache", "", ContentType("themes"))
	assert.True(t, IsValidation(err))

	_, err = NewLookupQuery(FunctionLookup, "the_title", "", ContentPosts)
	assert.True(t, IsValidation(err))
}

func TestContentType_SearchKind(t *testing.T) {
	assert.Equal(t, PostsSearch, ContentPosts.SearchKind())
	assert.Equal(t, FunctionsSearch, ContentFunctions.SearchKind())
	assert.Equal(t, HooksSearch, ContentHooks.SearchKind())
	assert.Equal(t, ClassesSearch, ContentClasses.SearchKind())
}

func TestContentType_IsReference(t *testing.T) {
	assert.False(t, ContentPosts.IsReference())
	assert.True(t, ContentFunctions.IsReference())
	assert.True(t, ContentHooks.IsReference())
	assert.True(t, ContentClasses.IsReference())
}

func TestSection_IsValid(t *testing.T) {
	for _, s := range AllSections() {
		assert.True(t, s.IsValid(), s)
	}
	assert.False(t, Section("").IsValid())
}

func TestLookupKind_String(t *testing.T) {
	assert.Len(t, AllLookupKinds(), 6)
	assert.Equal(t, "vip_search", VipSearch.String())
	assert.Equal(t, unknownDescription, LookupKind(42).String())
}
