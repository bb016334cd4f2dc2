// Package router moves the onboarding display between step views.
//
// Unlike a general navigation stack, the pager serves one linear flow. It
// keeps an append-only cache of views in visit order and, for every step
// change, picks one of three moves:
//
//   - the step renders on the visible page (a step merged with its
//     predecessor): the current view re-renders itself, nothing is swapped
//   - the step is the predecessor of the displayed step: go back one view,
//     which must already be cached
//   - anything else: go forward one view, reusing the cached view when the
//     user has been there before and building it otherwise
//
// # Basic Usage
//
//	state := flow.NewSubject(flow.Initial(flow.Model{}))
//
//	pager, err := router.New(state, router.ViewFactoryFunc(func(page flow.Page, s *flow.Subject) router.View {
//	    switch page {
//	    case flow.PageWelcome:
//	        return newWelcomeView(s)
//	    case flow.PageSkillLevel:
//	        return newSkillLevelView(s)
//	    default:
//	        return newCompletionView(s)
//	    }
//	}), router.Options{Transitioner: slide})
//
//	state.Subscribe(func(s flow.State) {
//	    _ = pager.Advance(s.Step)
//	})
//
// # Transitions
//
// The Transitioner decides how views change on screen. Steps whose catalog
// entry asks for a page transition are animated; the rest swap instantly.
// The completion callback is weakly bound to the pager: once the pager is
// closed or collected, late callbacks do nothing.
package router
