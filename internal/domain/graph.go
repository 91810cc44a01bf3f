package domain

import "sort"

// ConnectedComponents partitions the given responses by the connection graph.
// Only edges whose endpoints are both in responses are followed. Components
// and their members keep the order of responses.
func ConnectedComponents(responses []*Response, connections map[string]*Connection) [][]*Response {
	index := make(map[string]int, len(responses))
	for i, r := range responses {
		index[r.ID] = i
	}

	adjacency := make(map[string][]string, len(responses))
	ids := make([]string, 0, len(connections))
	for id := range connections {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		c := connections[id]
		_, okFrom := index[c.FromResponseID]
		_, okTo := index[c.ToResponseID]
		if !okFrom || !okTo || c.FromResponseID == c.ToResponseID {
			continue
		}
		adjacency[c.FromResponseID] = append(adjacency[c.FromResponseID], c.ToResponseID)
		adjacency[c.ToResponseID] = append(adjacency[c.ToResponseID], c.FromResponseID)
	}

	visited := make(map[string]bool, len(responses))
	var components [][]*Response
	for _, start := range responses {
		if visited[start.ID] {
			continue
		}
		visited[start.ID] = true
		var component []*Response
		queue := []string{start.ID}
		for len(queue) > 0 {
			id := queue[0]
			queue = queue[1:]
			component = append(component, responses[index[id]])
			for _, next := range adjacency[id] {
				if !visited[next] {
					visited[next] = true
					queue = append(queue, next)
				}
			}
		}
		sort.Slice(component, func(i, j int) bool { return index[component[i].ID] < index[component[j].ID] })
		components = append(components, component)
	}
	return components
}

// ComponentOf returns the component containing responseID, or nil.
func ComponentOf(components [][]*Response, responseID string) []*Response {
	for _, component := range components {
		for _, r := range component {
			if r.ID == responseID {
				return component
			}
		}
	}
	return nil
}
