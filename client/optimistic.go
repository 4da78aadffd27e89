package client

// optimistic runs a cache-patching mutation: snapshot the touched keys,
// apply the optimistic patch, perform the call, and on failure restore the
// snapshot so no trace of the patch survives.
func (c *Client) optimistic(keys []Key, apply func(), call func() error) error {
	snap := c.cache.Snapshot(keys...)
	apply()

	if err := call(); err != nil {
		c.cache.Restore(snap)
		return err
	}
	return nil
}
